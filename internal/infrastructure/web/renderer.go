// Package web renders the meeting mock-up page for echo.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer implements echo.Renderer over the embedded templates
type Renderer struct {
	templates *template.Template
}

// flagButton is one participant toggle in the config panel
type flagButton struct {
	ID    string
	Field string
	On    bool
	Icon  string
	Title string
}

// imageSource marks inline image data as safe. Anything else stays a plain
// string so html/template filters unsafe schemes such as javascript:.
func imageSource(s string) any {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "data:image/") {
		return template.URL(s)
	}
	return s
}

// tile styles come from the palette and are produced server side
var funcs = template.FuncMap{
	"css": func(s string) template.CSS { return template.CSS(s) },
	"src": imageSource,
	"flag": func(id, field string, on bool, icon, title string) flagButton {
		return flagButton{ID: id, Field: field, On: on, Icon: icon, Title: title}
	},
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render executes the named template
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
