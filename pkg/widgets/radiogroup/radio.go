package radiogroup

import (
	"github.com/lumen-ui/lumen/pkg/lumen"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

// ItemProps configures a single radio item.
type ItemProps struct {
	// ID overrides the default <group id>-item-<ordinal> element id.
	ID string

	// Disabled excludes the item from activation, keyboard navigation,
	// and the initial tab stop.
	Disabled bool

	// Label and LabelledBy name the item explicitly. Without either the
	// item's content is its implicit label. LabelledBy wins when both are
	// set.
	Label      string
	LabelledBy string

	// DescribedBy references a longer description element.
	DescribedBy string

	// OnClick and OnKeyDown are caller hooks. They run before the group's
	// own handling and are never suppressed by it.
	OnClick   func(lumen.MouseEvent)
	OnKeyDown func(lumen.KeyboardEvent)

	// Attrs are extra attributes for the item element.
	Attrs []vdom.Attr
}

// Item is a single option inside a Group. Construct it with NewItem and
// pass it to New; rendering it outside a group yields a plain, inert
// element.
type Item struct {
	props    ItemProps
	children []any
}

// NewItem creates a radio item with the given content.
func NewItem(props ItemProps, children ...any) *Item {
	return &Item{props: props, children: children}
}

// Render implements vdom.Component. The item registers with its group's
// descendant registry, so render order determines ordinals.
func (it *Item) Render() *vdom.VNode {
	s := groupCtx.Use()
	if s == nil {
		return it.renderDetached()
	}

	ordinal, id := s.register(it)
	isSelected := ordinal == s.selected
	tabbable := isSelected || (s.selected == -1 && ordinal == s.initial)

	args := []any{
		vdom.ID(id),
		vdom.Role("radio"),
		vdom.AriaChecked(isSelected),
		vdom.TabIndex(tabIndexFor(tabbable)),
	}
	args = append(args, it.labelArgs()...)
	if it.props.Disabled {
		args = append(args, vdom.AriaDisabled(true), vdom.Data("disabled", "true"))
	}
	for _, a := range it.props.Attrs {
		args = append(args, a)
	}
	args = append(args,
		vdom.OnClick(it.clickHandler(s, ordinal)),
		vdom.OnKeyDown(it.keyDownHandler(s, ordinal, isSelected)),
	)
	args = append(args, it.children...)
	return vdom.Span(args...)
}

// clickHandler activates the item. The caller's hook always runs first;
// disabled items otherwise ignore the click.
func (it *Item) clickHandler(s *shared, ordinal int) func(lumen.MouseEvent) {
	return func(ev lumen.MouseEvent) {
		if it.props.OnClick != nil {
			it.props.OnClick(ev)
		}
		if it.props.Disabled {
			return
		}
		s.selectOrdinal(ordinal)
	}
}

// keyDownHandler maps navigation keys through the group and lets the
// activate keys select a not-yet-selected item.
func (it *Item) keyDownHandler(s *shared, ordinal int, isSelected bool) func(lumen.KeyboardEvent) {
	return func(ev lumen.KeyboardEvent) {
		if it.props.OnKeyDown != nil {
			it.props.OnKeyDown(ev)
		}
		switch ev.Key {
		case lumen.KeySpace, lumen.KeyEnter:
			if !isSelected && !it.props.Disabled {
				s.selectOrdinal(ordinal)
			}
		default:
			s.navigate(ev.Key)
		}
	}
}

func (it *Item) labelArgs() []any {
	var args []any
	switch {
	case it.props.LabelledBy != "":
		args = append(args, vdom.AriaLabelledBy(it.props.LabelledBy))
	case it.props.Label != "":
		args = append(args, vdom.AriaLabel(it.props.Label))
	}
	if it.props.DescribedBy != "" {
		args = append(args, vdom.AriaDescribedBy(it.props.DescribedBy))
	}
	return args
}

func tabIndexFor(tabbable bool) int {
	if tabbable {
		return 0
	}
	return -1
}

// renderDetached renders the item outside any group.
func (it *Item) renderDetached() *vdom.VNode {
	args := []any{vdom.Role("radio"), vdom.AriaChecked(false)}
	if it.props.ID != "" {
		args = append(args, vdom.ID(it.props.ID))
	}
	args = append(args, it.children...)
	return vdom.Span(args...)
}

var _ vdom.Component = (*Item)(nil)
