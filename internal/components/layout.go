package components

import "github.com/3-lines-studio/elysium/internal/core"

const (
	defaultTitle = "Elysium"
	defaultLang  = "en"
)

type LayoutConfig struct {
	Title       string
	Lang        string
	Stylesheets []string
	Scripts     []string
	Head        []*core.Node
	Children    []*core.Node
	BodyClass   string

	// ReloadScript is appended to the body when set (dev mode only).
	ReloadScript string
}

func (c LayoutConfig) normalize() LayoutConfig {
	if c.Title == "" {
		c.Title = defaultTitle
	}
	if c.Lang == "" {
		c.Lang = defaultLang
	}
	return c
}

// Layout renders a complete HTML document around its children.
func Layout(c LayoutConfig) *core.Node {
	c = c.normalize()

	head := []*core.Node{
		core.El("meta", core.Attributes{}.Set("charset", "UTF-8")),
		core.El("meta", core.Attributes{}.
			Set("name", "viewport").
			Set("content", "width=device-width, initial-scale=1.0")),
		core.El("title", nil, core.Text(c.Title)),
	}
	for _, href := range c.Stylesheets {
		head = append(head, core.El("link", core.Attributes{}.Set("rel", "stylesheet").Set("href", href)))
	}
	for _, src := range c.Scripts {
		head = append(head, core.El("script", core.Attributes{}.Set("src", src).SetIf(true, "defer")))
	}
	head = append(head, c.Head...)

	body := append([]*core.Node{}, c.Children...)
	if c.ReloadScript != "" {
		body = append(body, core.El("script", nil, core.Text(c.ReloadScript)))
	}

	return core.Fragment(
		core.Doctype(),
		core.El("html", core.Attributes{}.Set("lang", c.Lang),
			core.El("head", nil, head...),
			core.El("body", core.Attributes{}.Set("class", core.Classes(layoutBody, c.BodyClass)), body...),
		),
	)
}
