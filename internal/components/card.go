package components

import "github.com/3-lines-studio/elysium/internal/core"

type CardConfig struct {
	Title     string
	Subtitle  string
	Footer    *core.Node
	Children  []*core.Node
	ClassName string
	Rest      map[string]string
}

func Card(c CardConfig) *core.Node {
	attrs := core.Attributes{}.
		Set("class", core.Classes(cardBase, c.ClassName)).
		Merge(c.Rest)

	return core.El("div", attrs,
		cardHeaderBlock(c),
		core.El("div", core.Attributes{}.Set("class", cardBody), c.Children...),
		cardFooterBlock(c),
	)
}

func cardHeaderBlock(c CardConfig) *core.Node {
	if c.Title == "" && c.Subtitle == "" {
		return nil
	}
	var title, subtitle *core.Node
	if c.Title != "" {
		title = core.El("h3", core.Attributes{}.Set("class", cardTitle), core.Text(c.Title))
	}
	if c.Subtitle != "" {
		subtitle = core.El("p", core.Attributes{}.Set("class", cardSubtitle), core.Text(c.Subtitle))
	}
	return core.El("div", core.Attributes{}.Set("class", cardHeader), title, subtitle)
}

func cardFooterBlock(c CardConfig) *core.Node {
	if c.Footer == nil {
		return nil
	}
	return core.El("div", core.Attributes{}.Set("class", cardFooter), c.Footer)
}
