package vdom

// voidElements cannot have children.
var voidElements = map[string]bool{
	"br":    true,
	"hr":    true,
	"img":   true,
	"input": true,
	"link":  true,
	"meta":  true,
}

// IsVoidElement reports whether the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// El creates an element node with the given tag. Arguments may be nil,
// Attr, []Attr, EventHandler, *VNode, []*VNode, Component, or string
// (converted to a text child). Nil arguments are skipped so attributes
// and children can be supplied conditionally.
func El(tag string, args ...any) *VNode {
	node := &VNode{
		Kind:  KindElement,
		Tag:   tag,
		Props: make(Props),
	}

	for _, arg := range args {
		appendArg(node, arg)
	}

	return node
}

func appendArg(node *VNode, arg any) {
	switch v := arg.(type) {
	case nil:

	case Attr:
		setAttr(node, v)

	case []Attr:
		for _, a := range v {
			setAttr(node, a)
		}

	case EventHandler:
		if v.Event != "" && v.Handler != nil {
			node.Props[v.Event] = v.Handler
		}

	case *VNode:
		if v != nil {
			node.Children = append(node.Children, v)
		}

	case []*VNode:
		for _, c := range v {
			if c != nil {
				node.Children = append(node.Children, c)
			}
		}

	case string:
		node.Children = append(node.Children, Text(v))

	case Component:
		node.Children = append(node.Children, &VNode{Kind: KindComponent, Comp: v})
	}
}

func setAttr(node *VNode, a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			node.Key = s
		}
		return
	}
	node.Props[a.Key] = a.Value
}

// Common element constructors.

func Div(args ...any) *VNode    { return El("div", args...) }
func Span(args ...any) *VNode   { return El("span", args...) }
func P(args ...any) *VNode      { return El("p", args...) }
func H1(args ...any) *VNode     { return El("h1", args...) }
func H2(args ...any) *VNode     { return El("h2", args...) }
func H3(args ...any) *VNode     { return El("h3", args...) }
func Ul(args ...any) *VNode     { return El("ul", args...) }
func Ol(args ...any) *VNode     { return El("ol", args...) }
func Li(args ...any) *VNode     { return El("li", args...) }
func A(args ...any) *VNode      { return El("a", args...) }
func Button(args ...any) *VNode { return El("button", args...) }
func Label(args ...any) *VNode  { return El("label", args...) }
func Input(args ...any) *VNode  { return El("input", args...) }
func Form(args ...any) *VNode   { return El("form", args...) }
func Main(args ...any) *VNode   { return El("main", args...) }
func Nav(args ...any) *VNode    { return El("nav", args...) }
func Header(args ...any) *VNode { return El("header", args...) }
func Footer(args ...any) *VNode { return El("footer", args...) }
func Section(args ...any) *VNode { return El("section", args...) }
