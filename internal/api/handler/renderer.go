package handler

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer adapts html/template to the echo.Renderer interface. Templates are
// embedded at build time so the binary is self-contained.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates. Panics on malformed templates,
// which is a build defect rather than a runtime condition.
func NewRenderer() *Renderer {
	return &Renderer{templates: template.Must(template.ParseFS(templateFS, "templates/*.html"))}
}

// Render satisfies echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
