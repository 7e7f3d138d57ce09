package radiogroup

import (
	"fmt"

	"github.com/lumen-ui/lumen/pkg/descendants"
	"github.com/lumen-ui/lumen/pkg/lumen"
)

// member is what an item contributes to the group's descendant registry.
type member struct {
	id       string
	disabled bool
}

// shared is the per-render selection state a Group exposes to its items.
// It is rebuilt on every group render; items pick it up through groupCtx
// while the tree is being expanded.
type shared struct {
	group *Group

	// selected is the effective selected ordinal, or -1 when no item is
	// selected.
	selected int

	// initial is the ordinal of the first enabled item, or -1 while no
	// enabled item has registered. When nothing is selected this item is
	// the group's single tab stop.
	initial int
}

var groupCtx = lumen.CreateContext[*shared](nil)

// register adds an item to the group's registry and returns its ordinal
// and element id. Items call this from Render, so registration order is
// document order.
func (s *shared) register(it *Item) (int, string) {
	key := fmt.Sprintf("%p", it)
	ordinal := s.group.registry.Register(key, member{disabled: it.props.Disabled})
	id := it.props.ID
	if id == "" {
		// Default item ids derive from the ordinal, which is only known
		// after registering, so the entry is updated in place.
		id = fmt.Sprintf("%s-item-%d", s.group.id(), ordinal)
	}
	s.group.registry.Register(key, member{id: id, disabled: it.props.Disabled})
	if s.initial == -1 && !it.props.Disabled {
		s.initial = ordinal
	}
	return ordinal, id
}

// anchor is the ordinal relative navigation starts from: the selection
// when there is one, the initial tab stop otherwise. Starting from the
// initial item means the first arrow press with no selection lands on
// the item after it.
func (s *shared) anchor() int {
	if s.selected >= 0 {
		return s.selected
	}
	return s.initial
}

func (s *shared) enabled(i int) bool {
	m, ok := s.group.registry.At(i)
	return ok && !m.disabled
}

// selectOrdinal performs the group's selection operation: it notifies the
// caller, updates stored state in uncontrolled mode, and moves focus to
// the newly selected item. Ordinals outside the registry are ignored.
func (s *shared) selectOrdinal(i int) {
	g := s.group
	if i < 0 || i >= g.registry.Len() {
		return
	}
	if g.props.OnChange != nil {
		g.props.OnChange(i)
	}
	if !g.controlled {
		g.selected.Set(i)
	}
	if m, ok := g.registry.At(i); ok {
		lumen.RequestFocus(m.id)
	}
}

// navigate resolves an arrow, Home, or End key to a target ordinal among
// enabled items and selects it. Unrecognized keys return false.
func (s *shared) navigate(key string) bool {
	n := s.group.registry.Len()
	target := -1
	switch key {
	case lumen.KeyArrowDown, lumen.KeyArrowRight:
		target = descendants.Next(s.anchor(), n, s.enabled)
	case lumen.KeyArrowUp, lumen.KeyArrowLeft:
		target = descendants.Prev(s.anchor(), n, s.enabled)
	case lumen.KeyHome:
		target = descendants.First(n, s.enabled)
	case lumen.KeyEnd:
		target = descendants.Last(n, s.enabled)
	default:
		return false
	}
	if target >= 0 {
		s.selectOrdinal(target)
	}
	return true
}
