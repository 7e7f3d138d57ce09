package render

import (
	"strings"
	"testing"

	"github.com/lumen-ui/lumen/pkg/vdom"
)

func TestRenderElement(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "simple div",
			node: vdom.Div(vdom.ID("app"), "hello"),
			want: `<div id="app">hello</div>`,
		},
		{
			name: "attributes sorted",
			node: vdom.Span(vdom.Role("radio"), vdom.ID("x"), vdom.Class("c")),
			want: `<span class="c" id="x" role="radio"></span>`,
		},
		{
			name: "aria-checked keeps string value",
			node: vdom.Span(vdom.AriaChecked(false)),
			want: `<span aria-checked="false"></span>`,
		},
		{
			name: "tabindex renders negative value",
			node: vdom.Span(vdom.TabIndex(-1)),
			want: `<span tabindex="-1"></span>`,
		},
		{
			name: "presence attribute true",
			node: vdom.Input(vdom.Type("radio"), vdom.Checked()),
			want: `<input checked type="radio">`,
		},
		{
			name: "aria-disabled is value-carrying",
			node: vdom.Span(vdom.AriaDisabled(true)),
			want: `<span aria-disabled="true"></span>`,
		},
		{
			name: "fragment has no wrapper",
			node: vdom.Fragment(vdom.Span("a"), vdom.Span("b")),
			want: `<span>a</span><span>b</span>`,
		},
		{
			name: "nil node",
			node: nil,
			want: ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToString(tt.node)
			if err != nil {
				t.Fatalf("ToString: %v", err)
			}
			if got != tt.want {
				t.Errorf("ToString = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderEscaping(t *testing.T) {
	t.Run("text content", func(t *testing.T) {
		got, err := ToString(vdom.Div(vdom.Text(`<b>&"bold"</b>`)))
		if err != nil {
			t.Fatal(err)
		}
		want := `<div>&lt;b&gt;&amp;&quot;bold&quot;&lt;/b&gt;</div>`
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("attribute value", func(t *testing.T) {
		got, err := ToString(vdom.Div(vdom.AriaLabel(`a"b<c`)))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(got, `aria-label="a&quot;b&lt;c"`) {
			t.Errorf("got %q", got)
		}
	})
}

func TestRenderSkipsHandlers(t *testing.T) {
	node := vdom.Button(vdom.OnClick(func() {}), "go")
	got, err := ToString(node)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "onclick") {
		t.Errorf("handler leaked into output: %q", got)
	}
}

func TestRenderComponent(t *testing.T) {
	comp := vdom.Func(func() *vdom.VNode {
		return vdom.Span("inner")
	})
	got, err := ToString(vdom.Div(comp))
	if err != nil {
		t.Fatal(err)
	}
	if got != `<div><span>inner</span></div>` {
		t.Errorf("got %q", got)
	}
}

func TestRenderNID(t *testing.T) {
	expanded := vdom.Expand(vdom.Div(
		vdom.Button(vdom.OnClick(func() {}), "go"),
	))
	got, err := ToString(expanded)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `data-nid="n1"`) {
		t.Errorf("missing data-nid: %q", got)
	}
}

func TestRenderVoidElement(t *testing.T) {
	got, err := ToString(vdom.Input(vdom.Type("text")))
	if err != nil {
		t.Fatal(err)
	}
	if got != `<input type="text">` {
		t.Errorf("got %q", got)
	}
}
