package el

import "fmt"

// Node is an HTML element tree node.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []*Node

	// Text carries the content of text and raw nodes (empty Tag).
	Text string

	// raw marks a text node that renders without escaping.
	raw bool
}

// Attr is a single HTML attribute. An empty Value renders as a bare
// boolean attribute (e.g. "hidden").
type Attr struct {
	Key   string
	Value string
}

// IsEmpty reports whether this is the zero attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// El constructs an element node. Arguments are interpreted by type:
// Attr and []Attr attach attributes, *Node and []*Node attach children,
// string attaches an escaped text child, nil is skipped. Anything else
// panics, since a silent drop would hide the bug in the render tree.
func El(tag string, args ...any) *Node {
	n := &Node{Tag: tag}
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
		case Attr:
			if !v.IsEmpty() {
				n.Attrs = append(n.Attrs, v)
			}
		case []Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					n.Attrs = append(n.Attrs, a)
				}
			}
		case *Node:
			if v != nil {
				n.Children = append(n.Children, v)
			}
		case []*Node:
			for _, c := range v {
				if c != nil {
					n.Children = append(n.Children, c)
				}
			}
		case string:
			n.Children = append(n.Children, Text(v))
		default:
			panic(fmt.Sprintf("el: unsupported argument %T in <%s>", arg, tag))
		}
	}
	return n
}

// Text creates an escaped text node.
func Text(s string) *Node {
	return &Node{Text: s}
}

// Textf creates an escaped text node from a format string.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node. The caller is responsible for the
// content being safe.
func Raw(html string) *Node {
	return &Node{Text: html, raw: true}
}

// If returns node when cond is true and nil otherwise, for inline
// conditional children.
func If(cond bool, node *Node) *Node {
	if cond {
		return node
	}
	return nil
}

// IfAttr returns a when cond is true and the zero attribute otherwise,
// for inline conditional attributes.
func IfAttr(cond bool, a Attr) Attr {
	if cond {
		return a
	}
	return Attr{}
}
