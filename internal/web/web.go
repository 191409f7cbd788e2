// Package web содержит встроенные HTML-шаблоны и статику.
// Слой рендеринга — внешний коллаборатор: шаблоны тонкие, без логики.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Renderer исполняет именованные шаблоны страниц.
type Renderer struct {
	tpl *template.Template
}

// NewRenderer парсит все встроенные шаблоны один раз при старте.
func NewRenderer() (*Renderer, error) {
	tpl, err := template.ParseFS(templatesFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

// Render исполняет шаблон по имени файла (например, "login.gohtml").
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	return r.tpl.ExecuteTemplate(w, name, data)
}

// StaticHandler отдаёт встроенную статику; монтируется на /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// встроенная ФС фиксирована на этапе сборки
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
