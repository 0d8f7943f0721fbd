package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
)

//go:embed *.html
var files embed.FS

var funcs = template.FuncMap{
	"usd": func(v float64) string {
		return fmt.Sprintf("$%.2f", v)
	},
	"pct": func(v float64) string {
		return fmt.Sprintf("%.2f%%", v)
	},
	"upper": strings.ToUpper,
}

// Renderer holds the parsed page templates. Each page is parsed together
// with the shared layout so pages only define their content block.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every embedded page against the layout.
func New() (*Renderer, error) {
	names := []string{"index", "prices", "portfolio", "add_coin", "contact"}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(files, "layout.html", name+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

// Render writes the named page with the given data.
func (r *Renderer) Render(w io.Writer, name string, data interface{}) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return tmpl.ExecuteTemplate(w, "layout.html", data)
}
