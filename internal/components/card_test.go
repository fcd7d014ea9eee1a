package components

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/3-lines-studio/elysium/internal/core"
)

func isHeader(n *core.Node) bool {
	class, _ := n.Attrs.Get("class")
	return class == cardHeader
}

func TestCardHeader(t *testing.T) {
	tests := []struct {
		name         string
		config       CardConfig
		wantHeader   bool
		wantTitle    bool
		wantSubtitle bool
	}{
		{name: "neither", config: CardConfig{}},
		{name: "title only", config: CardConfig{Title: "Todos"}, wantHeader: true, wantTitle: true},
		{name: "subtitle only", config: CardConfig{Subtitle: "3 open"}, wantHeader: true, wantSubtitle: true},
		{name: "both", config: CardConfig{Title: "Todos", Subtitle: "3 open"}, wantHeader: true, wantTitle: true, wantSubtitle: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := Card(tt.config)
			header := root.Find(isHeader)
			if (header != nil) != tt.wantHeader {
				t.Fatalf("header present=%v, want %v", header != nil, tt.wantHeader)
			}
			if header == nil {
				return
			}

			title := findTag(header, "h3")
			subtitle := findTag(header, "p")
			if (title != nil) != tt.wantTitle {
				t.Errorf("title present=%v, want %v", title != nil, tt.wantTitle)
			}
			if (subtitle != nil) != tt.wantSubtitle {
				t.Errorf("subtitle present=%v, want %v", subtitle != nil, tt.wantSubtitle)
			}
			if title != nil && title.TextContent() != tt.config.Title {
				t.Errorf("expected title %q, got %q", tt.config.Title, title.TextContent())
			}
			if subtitle != nil && subtitle.TextContent() != tt.config.Subtitle {
				t.Errorf("expected subtitle %q, got %q", tt.config.Subtitle, subtitle.TextContent())
			}
		})
	}
}

func TestCardBodyAndFooter(t *testing.T) {
	t.Run("body always present", func(t *testing.T) {
		root := Card(CardConfig{})
		if len(root.Children) != 1 {
			t.Fatalf("expected only the body block, got %d children", len(root.Children))
		}
		if class := classOf(t, root.Children[0]); class != cardBody {
			t.Errorf("expected body classes, got %q", class)
		}
	})

	t.Run("footer when set", func(t *testing.T) {
		root := Card(CardConfig{
			Children: []*core.Node{core.Text("content")},
			Footer:   core.Text("footer"),
		})
		if len(root.Children) != 2 {
			t.Fatalf("expected body and footer, got %d children", len(root.Children))
		}
		if got := root.Children[1].TextContent(); got != "footer" {
			t.Errorf("expected footer text, got %q", got)
		}
		if got := root.Children[0].TextContent(); got != "content" {
			t.Errorf("expected body text, got %q", got)
		}
	})
}

func TestCardClassNameAndRest(t *testing.T) {
	root := Card(CardConfig{
		ClassName: "max-w-md",
		Rest:      map[string]string{"id": "todo-card", "class": "ignored"},
	})

	if got := classOf(t, root); got != cardBase+" max-w-md" {
		t.Errorf("unexpected class %q", got)
	}
	if v, _ := root.Attrs.Get("id"); v != "todo-card" {
		t.Errorf("expected id passthrough, got %q", v)
	}
}

func TestCardSnapshot(t *testing.T) {
	html := mustRender(t, Card(CardConfig{
		Title:    "Todos",
		Subtitle: "Things to do",
		Children: []*core.Node{core.El("p", nil, core.Text("Nothing yet."))},
		Footer:   Button(ButtonConfig{Variant: "link", Size: "sm", Children: []*core.Node{core.Text("Add")}}),
	}))
	snaps.MatchSnapshot(t, html)
}
