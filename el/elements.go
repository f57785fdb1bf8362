package el

// Element constructors for the tags the widget and demo page use.

func Html(args ...any) *Node    { return El("html", args...) }
func Head(args ...any) *Node    { return El("head", args...) }
func Body(args ...any) *Node    { return El("body", args...) }
func TitleEl(args ...any) *Node { return El("title", args...) }
func Meta(args ...any) *Node    { return El("meta", args...) }
func LinkEl(args ...any) *Node  { return El("link", args...) }
func Script(args ...any) *Node  { return El("script", args...) }
func StyleEl(args ...any) *Node { return El("style", args...) }

func Main(args ...any) *Node    { return El("main", args...) }
func Header(args ...any) *Node  { return El("header", args...) }
func Section(args ...any) *Node { return El("section", args...) }
func Div(args ...any) *Node     { return El("div", args...) }
func Span(args ...any) *Node    { return El("span", args...) }
func P(args ...any) *Node       { return El("p", args...) }
func H1(args ...any) *Node      { return El("h1", args...) }
func H2(args ...any) *Node      { return El("h2", args...) }
func H3(args ...any) *Node      { return El("h3", args...) }

func Ul(args ...any) *Node    { return El("ul", args...) }
func Li(args ...any) *Node    { return El("li", args...) }
func A(args ...any) *Node     { return El("a", args...) }
func Label(args ...any) *Node { return El("label", args...) }

func Button(args ...any) *Node { return El("button", args...) }
func Input(args ...any) *Node  { return El("input", args...) }
func Img(args ...any) *Node    { return El("img", args...) }
func Video(args ...any) *Node  { return El("video", args...) }
func Canvas(args ...any) *Node { return El("canvas", args...) }
