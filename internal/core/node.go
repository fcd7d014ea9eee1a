package core

type NodeKind int

const (
	ElementNode NodeKind = iota
	TextNode
	FragmentNode
	DoctypeNode
)

// Node is one entry of the markup tree handed to the serializer.
type Node struct {
	Kind     NodeKind
	Tag      string
	Attrs    Attributes
	Children []*Node
	Text     string
	Handlers map[string]Handler
}

func El(tag string, attrs Attributes, children ...*Node) *Node {
	return &Node{
		Kind:     ElementNode,
		Tag:      tag,
		Attrs:    attrs,
		Children: compact(children),
	}
}

func Text(text string) *Node {
	return &Node{Kind: TextNode, Text: text}
}

// Fragment groups children without a wrapping element.
func Fragment(children ...*Node) *Node {
	return &Node{Kind: FragmentNode, Children: compact(children)}
}

func Doctype() *Node {
	return &Node{Kind: DoctypeNode, Tag: "html"}
}

// On registers fn for the named event, replacing any previous handler.
func (n *Node) On(event string, fn Handler) *Node {
	if n.Handlers == nil {
		n.Handlers = make(map[string]Handler)
	}
	n.Handlers[event] = fn
	return n
}

// Dispatch delivers e to the handler registered for e.Type and reports
// whether one was found.
func (n *Node) Dispatch(e Event) bool {
	if n == nil || n.Handlers == nil {
		return false
	}
	fn, ok := n.Handlers[e.Type]
	if !ok || fn == nil {
		return false
	}
	fn(e)
	return true
}

// Find returns the first node in depth-first order for which match is true.
func (n *Node) Find(match func(*Node) bool) *Node {
	if n == nil {
		return nil
	}
	if match(n) {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// TextContent concatenates every text node below n.
func (n *Node) TextContent() string {
	if n == nil {
		return ""
	}
	if n.Kind == TextNode {
		return n.Text
	}
	var out string
	for _, child := range n.Children {
		out += child.TextContent()
	}
	return out
}

func compact(nodes []*Node) []*Node {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
