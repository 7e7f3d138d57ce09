// Package radiogroup implements an accessible single-selection radio
// group widget.
//
// A Group renders a container with role "radiogroup" and manages the
// selection of its Item children: which one is checked, which one is the
// roving tab stop, and how arrow-key navigation moves between enabled
// items. Items register with the group's descendant registry in document
// order and read the current selection from a shared context.
//
// A group is either controlled (the embedding application owns the
// selected index and supplies it via GroupProps.Index) or uncontrolled
// (the group stores its own selection, seeded by DefaultIndex). The mode
// is fixed at first render; flipping it later is reported as a
// development-time diagnostic and otherwise ignored.
//
//	group := radiogroup.New(
//	    radiogroup.GroupProps{ID: "crust", Label: "Pizza crust"},
//	    radiogroup.NewItem(radiogroup.ItemProps{}, "Regular crust"),
//	    radiogroup.NewItem(radiogroup.ItemProps{}, "Deep dish"),
//	    radiogroup.NewItem(radiogroup.ItemProps{}, "Thin crust"),
//	)
package radiogroup
