// Package el is a small HTML element DSL used to build the widget's render
// tree. Constructors take a variadic list of attributes, child nodes, and
// strings (which become escaped text nodes):
//
//	el.Div(el.Class("dropkit-dropzone"), el.Data("dk-drop", ""),
//	    el.P("Drag & drop files here"),
//	    el.Button(el.Data("dk-pick", ""), "Browse files"),
//	)
//
// Nodes render to HTML with attribute values and text escaped; Raw is the
// only unescaped escape hatch.
package el
