// Package web holds the HTML templates and exposes them to gin.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin/render"

	"github.com/nexatech/nexatech-web/internal/content/domain"
)

//go:embed templates
var templateFS embed.FS

var areas = []string{"public", "admin", "bare"}

// Renderer implements gin's render.HTMLRender. Every page is parsed together
// with its area layout and the shared partials, and is addressed as
// "<area>/<page>", e.g. "admin/list".
type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}

	for _, area := range areas {
		files, err := fs.Glob(templateFS, "templates/pages/"+area+"/*.html")
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			name := area + "/" + strings.TrimSuffix(path.Base(f), ".html")
			t, err := template.New(name).Funcs(Funcs()).ParseFS(templateFS,
				"templates/layouts/"+area+".html",
				"templates/partials/*.html",
				f,
			)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", name, err)
			}
			r.pages[name] = t
		}
	}
	return r, nil
}

// MustNew is New for callers that cannot continue without templates.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.pages[name]
	if !ok {
		return missing{name: name}
	}
	return render.HTML{Template: t, Name: "layout", Data: data}
}

type missing struct{ name string }

func (m missing) Render(http.ResponseWriter) error {
	return fmt.Errorf("web: no template named %q", m.name)
}

func (m missing) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"join": func(items []string, sep string) string {
			return strings.Join(items, sep)
		},
		"palette": func(c domain.Color) domain.Palette {
			return c.Palette()
		},
		"statusBadge": func(s domain.ContactStatus) string {
			return s.Badge()
		},
		"add": func(a, b int) int {
			return a + b
		},
		"lower":     strings.ToLower,
		"adminMenu": func() []MenuItem { return adminMenu },
	}
}

type MenuItem struct {
	Key   string
	Label string
	Path  string
}

var adminMenu = []MenuItem{
	{Key: "dashboard", Label: "Dashboard", Path: "/admin/dashboard"},
	{Key: "services", Label: "Services", Path: "/admin/dashboard/services"},
	{Key: "portfolio", Label: "Portfolio", Path: "/admin/dashboard/portfolio"},
	{Key: "contacts", Label: "Contacts", Path: "/admin/dashboard/contacts"},
	{Key: "analytics", Label: "Analytics", Path: "/admin/dashboard/analytics"},
}
