package vdom

import "strconv"

// Expand returns a copy of the tree with every component node replaced by
// its rendered output and with NIDs assigned to interactive elements in
// document order. The input tree is not modified.
func Expand(root *VNode) *VNode {
	e := &expander{}
	return e.expand(root)
}

type expander struct {
	counter int
}

func (e *expander) expand(node *VNode) *VNode {
	if node == nil {
		return nil
	}
	if node.Kind == KindComponent {
		if node.Comp == nil {
			return nil
		}
		return e.expand(node.Comp.Render())
	}

	out := &VNode{
		Kind: node.Kind,
		Tag:  node.Tag,
		Key:  node.Key,
		Text: node.Text,
	}
	if node.Props != nil {
		out.Props = make(Props, len(node.Props))
		for k, v := range node.Props {
			out.Props[k] = v
		}
	}
	if out.IsInteractive() {
		e.counter++
		out.NID = "n" + strconv.Itoa(e.counter)
	}
	for _, child := range node.Children {
		if c := e.expand(child); c != nil {
			out.Children = append(out.Children, c)
		}
	}
	return out
}

// Walk visits node and every descendant in depth-first document order.
// Component nodes are not expanded; call Expand first if the tree may
// still contain components. The visit function returns false to stop.
func Walk(node *VNode, visit func(*VNode) bool) {
	walk(node, visit)
}

func walk(node *VNode, visit func(*VNode) bool) bool {
	if node == nil {
		return true
	}
	if !visit(node) {
		return false
	}
	for _, child := range node.Children {
		if !walk(child, visit) {
			return false
		}
	}
	return true
}

// FindByNID returns the first node in the tree with the given NID, or nil.
func FindByNID(root *VNode, nid string) *VNode {
	var found *VNode
	Walk(root, func(n *VNode) bool {
		if n.NID == nid {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindByID returns the first element with the given id attribute, or nil.
func FindByID(root *VNode, id string) *VNode {
	var found *VNode
	Walk(root, func(n *VNode) bool {
		if n.Kind == KindElement {
			if v, ok := n.Props["id"].(string); ok && v == id {
				found = n
				return false
			}
		}
		return true
	})
	return found
}

// Handlers collects event handlers from an expanded tree, keyed by
// "<nid>:<event>" (e.g. "n2:onclick").
func Handlers(root *VNode) map[string]any {
	out := make(map[string]any)
	Walk(root, func(n *VNode) bool {
		if n.NID == "" {
			return true
		}
		for k, v := range n.Props {
			if len(k) > 2 && k[0] == 'o' && k[1] == 'n' {
				out[n.NID+":"+k] = v
			}
		}
		return true
	})
	return out
}
