package el

import "strings"

// AttrKV constructs an arbitrary attribute.
func AttrKV(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Class joins the non-empty class names with spaces.
func Class(names ...string) Attr {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			parts = append(parts, n)
		}
	}
	if len(parts) == 0 {
		return Attr{}
	}
	return Attr{Key: "class", Value: strings.Join(parts, " ")}
}

// Data constructs a data-* attribute.
func Data(key, value string) Attr {
	return Attr{Key: "data-" + key, Value: value}
}

func ID(v string) Attr     { return Attr{Key: "id", Value: v} }
func Src(v string) Attr    { return Attr{Key: "src", Value: v} }
func Alt(v string) Attr    { return Attr{Key: "alt", Value: v} }
func Href(v string) Attr   { return Attr{Key: "href", Value: v} }
func Rel(v string) Attr    { return Attr{Key: "rel", Value: v} }
func Type(v string) Attr   { return Attr{Key: "type", Value: v} }
func Name(v string) Attr   { return Attr{Key: "name", Value: v} }
func Accept(v string) Attr { return Attr{Key: "accept", Value: v} }
func Style(v string) Attr  { return Attr{Key: "style", Value: v} }

// Boolean attributes render as a bare key.
func Hidden() Attr      { return Attr{Key: "hidden"} }
func Multiple() Attr    { return Attr{Key: "multiple"} }
func Disabled() Attr    { return Attr{Key: "disabled"} }
func Autoplay() Attr    { return Attr{Key: "autoplay"} }
func Muted() Attr       { return Attr{Key: "muted"} }
func PlaysInline() Attr { return Attr{Key: "playsinline"} }
