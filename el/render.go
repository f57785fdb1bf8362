package el

import (
	"html"
	"io"
	"strings"
)

// voidElements never render a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// IsVoidElement reports whether tag is an HTML void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// Render writes the node tree as HTML. Text nodes and attribute values are
// escaped; Raw nodes are written verbatim.
func (n *Node) Render(w io.Writer) error {
	if n == nil {
		return nil
	}
	if n.Tag == "" {
		text := n.Text
		if !n.raw {
			text = html.EscapeString(text)
		}
		_, err := io.WriteString(w, text)
		return err
	}

	if _, err := io.WriteString(w, "<"+n.Tag); err != nil {
		return err
	}
	for _, a := range n.Attrs {
		if a.Value == "" {
			if _, err := io.WriteString(w, " "+a.Key); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(w, ` `+a.Key+`="`+html.EscapeString(a.Value)+`"`); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if IsVoidElement(n.Tag) {
		return nil
	}

	for _, c := range n.Children {
		if err := c.Render(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+n.Tag+">")
	return err
}

// RenderString renders the node tree to a string.
func (n *Node) RenderString() string {
	var b strings.Builder
	n.Render(&b)
	return b.String()
}
