package web

import (
	"html/template"
	"io"

	"sejahtera/internal/common"

	"github.com/labstack/echo/v4"
)

// Renderer adapts the embedded html/template set to echo's Renderer
// interface.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"deref": func(p *string) string {
			if p == nil {
				return "-"
			}
			return *p
		},
		"money": func(p *float64) string {
			if p == nil {
				return "-"
			}
			return common.Rupiah(*p)
		},
	}).ParseFS(Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
