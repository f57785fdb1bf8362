package el

import (
	"strings"
	"testing"
)

func TestRenderBasicTree(t *testing.T) {
	n := Div(Class("box"),
		H2("Title"),
		P("hello"),
	)

	got := n.RenderString()
	want := `<div class="box"><h2>Title</h2><p>hello</p></div>`
	if got != want {
		t.Errorf("RenderString() = %q, want %q", got, want)
	}
}

func TestRenderEscapesTextAndAttributes(t *testing.T) {
	n := Div(AttrKV("title", `a"b<c`), "x < y & z")

	got := n.RenderString()
	if strings.Contains(got, "x < y") {
		t.Errorf("text not escaped: %q", got)
	}
	if !strings.Contains(got, "x &lt; y &amp; z") {
		t.Errorf("expected escaped text, got %q", got)
	}
	if !strings.Contains(got, `title="a&#34;b&lt;c"`) {
		t.Errorf("expected escaped attribute, got %q", got)
	}
}

func TestRenderRawIsUnescaped(t *testing.T) {
	n := Div(Raw("<b>bold</b>"))

	if got := n.RenderString(); got != "<div><b>bold</b></div>" {
		t.Errorf("RenderString() = %q", got)
	}
}

func TestRenderVoidElement(t *testing.T) {
	n := Img(Src("/x.png"), Alt("x"))

	got := n.RenderString()
	want := `<img src="/x.png" alt="x">`
	if got != want {
		t.Errorf("RenderString() = %q, want %q", got, want)
	}
}

func TestBooleanAttribute(t *testing.T) {
	n := Input(Type("file"), Multiple(), Hidden())

	got := n.RenderString()
	want := `<input type="file" multiple hidden>`
	if got != want {
		t.Errorf("RenderString() = %q, want %q", got, want)
	}
}

func TestClassSkipsEmptyNames(t *testing.T) {
	if got := Class("a", "", "b").Value; got != "a b" {
		t.Errorf("Class value = %q, want %q", got, "a b")
	}
	if !Class("", "").IsEmpty() {
		t.Error("all-empty Class should produce the zero attribute")
	}
}

func TestElSkipsNilChildren(t *testing.T) {
	n := Div(If(false, P("hidden")), If(true, P("shown")), nil)

	got := n.RenderString()
	if got != "<div><p>shown</p></div>" {
		t.Errorf("RenderString() = %q", got)
	}
}

func TestElPanicsOnUnsupportedArg(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unsupported argument type")
		}
	}()
	Div(42)
}

func TestNilNodeRenders(t *testing.T) {
	var n *Node
	if got := n.RenderString(); got != "" {
		t.Errorf("nil render = %q, want empty", got)
	}
}
