package main

import (
	"github.com/lumen-ui/lumen/pkg/lumen"
	"github.com/lumen-ui/lumen/pkg/vdom"
	"github.com/lumen-ui/lumen/pkg/widgets/radiogroup"
)

var crustLabels = []string{"Regular crust", "Deep dish", "Thin crust"}

// newCrustPicker builds the demo page: a pizza-crust radio group with a
// status line that tracks the selection.
func newCrustPicker() vdom.Component {
	choice := lumen.NewSignal(-1)

	items := make([]*radiogroup.Item, 0, len(crustLabels))
	for _, label := range crustLabels {
		items = append(items, radiogroup.NewItem(radiogroup.ItemProps{}, label))
	}
	group := radiogroup.New(radiogroup.GroupProps{
		ID:       "crust",
		Label:    "Pizza crust",
		OnChange: func(i int) { choice.Set(i) },
	}, items...)

	return vdom.Func(func() *vdom.VNode {
		picked := "nothing yet"
		if i := choice.Get(); i >= 0 && i < len(crustLabels) {
			picked = crustLabels[i]
		}
		return vdom.Main(
			vdom.H1("Pizza crust"),
			group,
			vdom.P(vdom.ID("choice"), "You picked: "+picked),
		)
	})
}
