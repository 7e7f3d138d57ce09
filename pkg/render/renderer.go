// Package render turns vdom trees into HTML.
package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/lumen-ui/lumen/pkg/vdom"
)

// Renderer writes a vdom tree as HTML. Attribute order is sorted so output
// is deterministic and assertable. The zero value is ready to use.
type Renderer struct{}

// ToString renders a tree to an HTML string.
func (r *Renderer) ToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.ToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToWriter streams a tree to w.
func (r *Renderer) ToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node)
}

func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child); err != nil {
				return err
			}
		}
		return nil
	case vdom.KindComponent:
		if node.Comp == nil {
			return nil
		}
		return r.renderNode(w, node.Comp.Render())
	default:
		return fmt.Errorf("render: unknown node kind %d", node.Kind)
	}
}

func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode) error {
	if _, err := io.WriteString(w, "<"+node.Tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}
	if node.NID != "" {
		if _, err := fmt.Fprintf(w, ` data-nid="%s"`, escapeAttr(node.NID)); err != nil {
			return err
		}
	}

	if vdom.IsVoidElement(node.Tag) {
		_, err := io.WriteString(w, ">")
		return err
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	for _, child := range node.Children {
		if err := r.renderNode(w, child); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+node.Tag+">")
	return err
}

// presenceAttrs render as bare attributes when true and disappear when
// false. aria-* attributes are excluded: they always carry a value.
var presenceAttrs = map[string]bool{
	"checked":  true,
	"disabled": true,
	"hidden":   true,
	"readonly": true,
	"required": true,
	"selected": true,
}

func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if len(node.Props) == 0 {
		return nil
	}

	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]

		// Event handlers are routed, not serialized.
		if strings.HasPrefix(key, "on") && isHandler(value) {
			continue
		}

		if presenceAttrs[key] {
			if b, ok := value.(bool); ok {
				if b {
					if _, err := io.WriteString(w, " "+key); err != nil {
						return err
					}
				}
				continue
			}
		}

		str, ok := attrToString(value)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(str)); err != nil {
			return err
		}
	}
	return nil
}

// attrToString converts an attribute value to its serialized form. The
// second return is false for values that should be skipped entirely.
func attrToString(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}

// isHandler reports whether the value is a function and therefore an
// event handler rather than a literal "onXxx" attribute string.
func isHandler(value any) bool {
	switch value.(type) {
	case string, bool, int, int64, float64, nil:
		return false
	}
	return true
}

// ToString renders a tree with a zero-value Renderer. Convenience for
// tests and one-shot static rendering.
func ToString(node *vdom.VNode) (string, error) {
	var r Renderer
	return r.ToString(node)
}
