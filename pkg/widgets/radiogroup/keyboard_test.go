package radiogroup

import (
	"testing"

	"github.com/lumen-ui/lumen/pkg/lumen"
	"github.com/lumen-ui/lumen/pkg/uitest"
)

func selectedID(g *Group) string {
	i := g.SelectedIndex()
	if i < 0 {
		return ""
	}
	return itemIDFor(g.id(), i)
}

func TestArrowKeysMoveSelection(t *testing.T) {
	tests := []struct {
		name  string
		start int
		key   string
		want  int
	}{
		{"down advances", 0, lumen.KeyArrowDown, 1},
		{"right advances", 0, lumen.KeyArrowRight, 1},
		{"up retreats", 1, lumen.KeyArrowUp, 0},
		{"left retreats", 1, lumen.KeyArrowLeft, 0},
		{"down wraps from last", 2, lumen.KeyArrowDown, 0},
		{"up wraps from first", 0, lumen.KeyArrowUp, 2},
		{"home goes first", 2, lumen.KeyHome, 0},
		{"end goes last", 0, lumen.KeyEnd, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := tt.start
			g := crustGroup(GroupProps{DefaultIndex: &start})
			h := uitest.Mount(g)
			defer h.Unmount()

			from := itemIDFor("crust", tt.start)
			if err := h.KeyDown(from, tt.key); err != nil {
				t.Fatal(err)
			}

			if g.SelectedIndex() != tt.want {
				t.Errorf("selected = %d, want %d", g.SelectedIndex(), tt.want)
			}
			wantID := itemIDFor("crust", tt.want)
			if got := ariaChecked(t, h, wantID); got != "true" {
				t.Errorf("target item aria-checked = %q", got)
			}
			if h.Focused() != wantID {
				t.Errorf("focus = %q, want %q", h.Focused(), wantID)
			}
			if got := tabIndexOf(t, h, wantID); got != 0 {
				t.Errorf("target tabindex = %d, want 0", got)
			}
			if n := checkedCount(h.HTML()); n != 1 {
				t.Errorf("checked items = %d, want 1", n)
			}
		})
	}
}

func TestNavigationSkipsDisabled(t *testing.T) {
	newGroup := func(start int) (*Group, *uitest.Harness) {
		g := New(GroupProps{ID: "g", Label: "g", DefaultIndex: &start},
			NewItem(ItemProps{}, "a"),
			NewItem(ItemProps{Disabled: true}, "b"),
			NewItem(ItemProps{}, "c"),
		)
		return g, uitest.Mount(g)
	}

	t.Run("forward over disabled", func(t *testing.T) {
		g, h := newGroup(0)
		defer h.Unmount()
		if err := h.KeyDown("g-item-0", lumen.KeyArrowDown); err != nil {
			t.Fatal(err)
		}
		if g.SelectedIndex() != 2 {
			t.Errorf("selected = %d, want 2", g.SelectedIndex())
		}
	})

	t.Run("backward over disabled", func(t *testing.T) {
		g, h := newGroup(2)
		defer h.Unmount()
		if err := h.KeyDown("g-item-2", lumen.KeyArrowUp); err != nil {
			t.Fatal(err)
		}
		if g.SelectedIndex() != 0 {
			t.Errorf("selected = %d, want 0", g.SelectedIndex())
		}
	})

	t.Run("wrap over disabled", func(t *testing.T) {
		g, h := newGroup(2)
		defer h.Unmount()
		if err := h.KeyDown("g-item-2", lumen.KeyArrowDown); err != nil {
			t.Fatal(err)
		}
		if g.SelectedIndex() != 0 {
			t.Errorf("selected = %d, want 0", g.SelectedIndex())
		}
	})

	t.Run("end skips trailing disabled", func(t *testing.T) {
		g := New(GroupProps{ID: "g", Label: "g"},
			NewItem(ItemProps{}, "a"),
			NewItem(ItemProps{}, "b"),
			NewItem(ItemProps{Disabled: true}, "c"),
		)
		h := uitest.Mount(g)
		defer h.Unmount()
		if err := h.KeyDown("g-item-0", lumen.KeyEnd); err != nil {
			t.Fatal(err)
		}
		if g.SelectedIndex() != 1 {
			t.Errorf("selected = %d, want 1", g.SelectedIndex())
		}
	})
}

// With no selection, navigation anchors at the initial tab stop, so the
// first arrow press lands on the item after it rather than selecting it.
func TestFirstArrowWithNoSelectionAdvancesPastInitial(t *testing.T) {
	g := crustGroup(GroupProps{})
	h := uitest.Mount(g)
	defer h.Unmount()

	if err := h.KeyDown("crust-item-0", lumen.KeyArrowDown); err != nil {
		t.Fatal(err)
	}
	if g.SelectedIndex() != 1 {
		t.Errorf("selected = %d, want 1", g.SelectedIndex())
	}

	g2 := crustGroup(GroupProps{})
	h2 := uitest.Mount(g2)
	defer h2.Unmount()
	if err := h2.KeyDown("crust-item-0", lumen.KeyArrowUp); err != nil {
		t.Fatal(err)
	}
	if g2.SelectedIndex() != 2 {
		t.Errorf("arrow up with no selection selected %d, want 2", g2.SelectedIndex())
	}
}

func TestSpaceSelectsUnselected(t *testing.T) {
	var changes []int
	g := crustGroup(GroupProps{OnChange: func(i int) { changes = append(changes, i) }})
	h := uitest.Mount(g)
	defer h.Unmount()

	if err := h.KeyDown("crust-item-0", lumen.KeySpace); err != nil {
		t.Fatal(err)
	}
	if g.SelectedIndex() != 0 {
		t.Fatalf("selected = %d, want 0", g.SelectedIndex())
	}

	// Space on the already selected item changes nothing.
	if err := h.KeyDown("crust-item-0", lumen.KeySpace); err != nil {
		t.Fatal(err)
	}
	if len(changes) != 1 {
		t.Errorf("OnChange calls = %v, want exactly one", changes)
	}
}

func TestSpaceIgnoredOnDisabled(t *testing.T) {
	g := New(GroupProps{ID: "g", Label: "g"},
		NewItem(ItemProps{}, "a"),
		NewItem(ItemProps{Disabled: true}, "b"),
	)
	h := uitest.Mount(g)
	defer h.Unmount()

	if err := h.KeyDown("g-item-1", lumen.KeySpace); err != nil {
		t.Fatal(err)
	}
	if g.SelectedIndex() != -1 {
		t.Errorf("selected = %d, want none", g.SelectedIndex())
	}
}

func TestAllDisabledHasNoTabStopAndIgnoresKeys(t *testing.T) {
	g := New(GroupProps{ID: "g", Label: "g"},
		NewItem(ItemProps{Disabled: true}, "a"),
		NewItem(ItemProps{Disabled: true}, "b"),
	)
	h := uitest.Mount(g)
	defer h.Unmount()

	for i := 0; i < 2; i++ {
		if got := tabIndexOf(t, h, itemIDFor("g", i)); got != -1 {
			t.Errorf("item %d tabindex = %d, want -1", i, got)
		}
	}
	if err := h.KeyDown("g-item-0", lumen.KeyArrowDown); err != nil {
		t.Fatal(err)
	}
	if g.SelectedIndex() != -1 {
		t.Errorf("selected = %d, want none", g.SelectedIndex())
	}
}

func TestCallerKeyHandlerRunsFirst(t *testing.T) {
	var order []string
	g := New(GroupProps{
		ID: "g", Label: "g",
		OnChange: func(int) { order = append(order, "change") },
	},
		NewItem(ItemProps{OnKeyDown: func(ev lumen.KeyboardEvent) {
			order = append(order, "caller:"+ev.Key)
		}}, "a"),
		NewItem(ItemProps{}, "b"),
	)
	h := uitest.Mount(g)
	defer h.Unmount()

	if err := h.KeyDown("g-item-0", lumen.KeyArrowDown); err != nil {
		t.Fatal(err)
	}

	want := []string{"caller:" + lumen.KeyArrowDown, "change"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestUnrelatedKeysIgnored(t *testing.T) {
	g := crustGroup(GroupProps{})
	h := uitest.Mount(g)
	defer h.Unmount()

	for _, key := range []string{lumen.KeyTab, lumen.KeyEscape, "a"} {
		if err := h.KeyDown("crust-item-0", key); err != nil {
			t.Fatal(err)
		}
	}
	if g.SelectedIndex() != -1 {
		t.Errorf("selected = %d, want none", g.SelectedIndex())
	}
}

// Walks the full pizza-crust interaction: tab lands on the first item,
// clicking another selects and focuses it, arrows move with wraparound,
// and exactly one item is ever checked.
func TestPizzaCrustWalkthrough(t *testing.T) {
	g := crustGroup(GroupProps{})
	h := uitest.Mount(g)
	defer h.Unmount()

	if got := tabIndexOf(t, h, "crust-item-0"); got != 0 {
		t.Fatalf("initial tab stop = %d, want item 0 tabbable", got)
	}

	if err := h.Click("crust-item-1"); err != nil {
		t.Fatal(err)
	}
	if got := selectedID(g); got != "crust-item-1" {
		t.Fatalf("after click selected = %q", got)
	}
	if h.Focused() != "crust-item-1" {
		t.Errorf("focus = %q, want crust-item-1", h.Focused())
	}

	if err := h.KeyDown("crust-item-1", lumen.KeyArrowDown); err != nil {
		t.Fatal(err)
	}
	if got := selectedID(g); got != "crust-item-2" {
		t.Fatalf("after arrow down selected = %q", got)
	}

	if err := h.KeyDown("crust-item-2", lumen.KeyArrowDown); err != nil {
		t.Fatal(err)
	}
	if got := selectedID(g); got != "crust-item-0" {
		t.Fatalf("after wraparound selected = %q", got)
	}

	if n := checkedCount(h.HTML()); n != 1 {
		t.Errorf("checked items = %d, want 1", n)
	}
}
