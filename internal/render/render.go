// Package render serializes a core markup tree to HTML.
package render

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/3-lines-studio/elysium/internal/core"
)

// Render writes n as HTML. A nil node writes nothing. Event handlers are
// server-side only and never reach the output.
func Render(w io.Writer, n *core.Node) error {
	if n == nil {
		return nil
	}

	doc := &html.Node{Type: html.DocumentNode}
	if err := appendNode(doc, n); err != nil {
		return err
	}

	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(w, c); err != nil {
			return fmt.Errorf("render %s: %w", describe(c), err)
		}
	}
	return nil
}

func String(n *core.Node) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func appendNode(parent *html.Node, n *core.Node) error {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case core.TextNode:
		parent.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
		return nil

	case core.DoctypeNode:
		name := n.Tag
		if name == "" {
			name = "html"
		}
		parent.AppendChild(&html.Node{Type: html.DoctypeNode, Data: name})
		return nil

	case core.FragmentNode:
		for _, child := range n.Children {
			if err := appendNode(parent, child); err != nil {
				return err
			}
		}
		return nil

	case core.ElementNode:
		if n.Tag == "" {
			return fmt.Errorf("element without tag")
		}
		el := &html.Node{
			Type:     html.ElementNode,
			Data:     n.Tag,
			DataAtom: atom.Lookup([]byte(n.Tag)),
			Attr:     toHTMLAttrs(n.Attrs),
		}
		for _, child := range n.Children {
			if err := appendNode(el, child); err != nil {
				return fmt.Errorf("<%s>: %w", n.Tag, err)
			}
		}
		parent.AppendChild(el)
		return nil
	}

	return fmt.Errorf("unknown node kind %d", n.Kind)
}

func toHTMLAttrs(attrs core.Attributes) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]html.Attribute, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, html.Attribute{Key: a.Key, Val: a.Value})
	}
	return out
}

func describe(n *html.Node) string {
	switch n.Type {
	case html.ElementNode:
		return "<" + n.Data + ">"
	case html.DoctypeNode:
		return "doctype"
	default:
		return "text"
	}
}

// HTML adapts Render to the page service's serializer port.
type HTML struct{}

func (HTML) Render(w io.Writer, n *core.Node) error {
	return Render(w, n)
}
