// Package render serialises vdom trees to HTML.
//
// Text and attribute values are escaped, void elements get no closing tag,
// valueless attributes (such as the morphed-ignore marker) and boolean
// attributes are written bare, and attributes are sorted so output is
// deterministic.
//
//	html, err := render.RenderToString(view.Node())
//
// Config.Pretty indents the output for reading and Config.Minify passes it
// through github.com/tdewolff/minify:
//
//	r := render.NewRenderer(render.Config{Minify: true})
//	err := r.RenderToWriter(os.Stdout, node)
package render
