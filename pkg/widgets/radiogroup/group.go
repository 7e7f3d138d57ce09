package radiogroup

import (
	"fmt"

	"github.com/lumen-ui/lumen/internal/diag"
	"github.com/lumen-ui/lumen/pkg/descendants"
	"github.com/lumen-ui/lumen/pkg/lumen"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

// GroupProps configures a radio group container.
type GroupProps struct {
	// ID is the container's element id. Item ids default to ID-item-N.
	ID string

	// Index makes the group controlled: it is the selected ordinal, owned
	// by the caller. The group never writes it; selection attempts are
	// reported through OnChange and the caller re-supplies Index.
	Index *int

	// DefaultIndex seeds the selection of an uncontrolled group. Without
	// it the group starts with nothing selected.
	DefaultIndex *int

	// OnChange is called with the target ordinal whenever selection is
	// requested, in both modes and before any internal state changes.
	OnChange func(index int)

	// Label and LabelledBy name the group. LabelledBy wins when both are
	// set. A group with neither has no accessible name.
	Label      string
	LabelledBy string

	// DescribedBy references a longer description element.
	DescribedBy string

	// Attrs are extra attributes for the container element.
	Attrs []vdom.Attr
}

// Group is a radio group component. Construct it with New and render it
// through the host view layer; it keeps its selection mode and, when
// uncontrolled, its selected ordinal across renders.
type Group struct {
	props GroupProps
	items []*Item

	registry *descendants.Registry[member]

	// selected holds the uncontrolled selection, -1 for none. It is read
	// during render so selection changes schedule a re-render.
	selected *lumen.Signal[int]

	// version bumps when Update replaces props, forcing a re-render.
	version *lumen.Signal[int]

	// controlled is latched on first render.
	controlled bool
	rendered   bool
}

// New creates a radio group over the given items.
func New(props GroupProps, items ...*Item) *Group {
	initial := -1
	if props.DefaultIndex != nil {
		initial = *props.DefaultIndex
	}
	return &Group{
		props:    props,
		items:    items,
		registry: descendants.NewRegistry[member](),
		selected: lumen.NewSignal(initial),
		version:  lumen.NewSignal(0),
	}
}

// Update replaces the group's props, as when the embedding application
// re-renders with new values. A controlled caller uses this to supply
// the next Index after handling OnChange.
func (g *Group) Update(props GroupProps) {
	g.props = props
	g.version.Update(func(v int) int { return v + 1 })
}

// SelectedIndex returns the effective selected ordinal, or -1 when no
// item is selected.
func (g *Group) SelectedIndex() int {
	if g.controlled || (!g.rendered && g.props.Index != nil) {
		return g.controlledIndex()
	}
	return g.selected.Peek()
}

func (g *Group) id() string {
	if g.props.ID != "" {
		return g.props.ID
	}
	return "radiogroup"
}

// controlledIndex validates props.Index against the item count, mapping
// anything out of range to "no selection".
func (g *Group) controlledIndex() int {
	if g.props.Index == nil {
		return -1
	}
	i := *g.props.Index
	if i < 0 || i >= len(g.items) {
		if lumen.DevMode {
			diag.Warnf("W103", "index %d with %d items", i, len(g.items))
		}
		return -1
	}
	return i
}

func (g *Group) checkMode() {
	hasIndex := g.props.Index != nil
	if !g.rendered {
		g.controlled = hasIndex
		g.rendered = true
	} else if hasIndex != g.controlled && lumen.DevMode {
		diag.Warnf("W101", "group %q", g.id())
	}
	if lumen.DevMode {
		if hasIndex && g.props.DefaultIndex != nil {
			diag.Warnf("W102", "group %q", g.id())
		}
		if g.props.Label == "" && g.props.LabelledBy == "" {
			diag.Warnf("W104", "group %q", g.id())
		}
	}
}

// Render implements vdom.Component.
func (g *Group) Render() *vdom.VNode {
	g.version.Get()
	g.checkMode()

	selected := -1
	if g.controlled {
		selected = g.controlledIndex()
	} else {
		selected = g.selected.Get()
		if selected < -1 || selected >= len(g.items) {
			selected = -1
		}
	}

	g.registry.Clear()
	s := &shared{group: g, selected: selected, initial: -1}
	groupCtx.Provide(s)

	args := []any{
		vdom.ID(g.id()),
		vdom.Role("radiogroup"),
	}
	switch {
	case g.props.LabelledBy != "":
		args = append(args, vdom.AriaLabelledBy(g.props.LabelledBy))
	case g.props.Label != "":
		args = append(args, vdom.AriaLabel(g.props.Label))
	}
	if g.props.DescribedBy != "" {
		args = append(args, vdom.AriaDescribedBy(g.props.DescribedBy))
	}
	for _, a := range g.props.Attrs {
		args = append(args, a)
	}
	for _, it := range g.items {
		args = append(args, it)
	}
	return vdom.Div(args...)
}

var _ vdom.Component = (*Group)(nil)

// itemIDFor is a convenience for tests and callers that need the default
// id of the item at the given ordinal.
func itemIDFor(groupID string, ordinal int) string {
	return fmt.Sprintf("%s-item-%d", groupID, ordinal)
}
