// Package view renderiza las páginas HTML con html/template.
package view

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"pet-care-center/internal/session"
)

//go:embed templates/*.html
var files embed.FS

// Context es lo que recibe todo template: el usuario de la sesión (nil si
// no hay), los datos de la vista y un mensaje de error inline opcional.
// Se arma explícito en cada handler, nada de estado ambiente.
type Context struct {
	User  *session.User
	Data  any
	Error string
}

var pages = []string{
	"index",
	"login",
	"register",
	"pets",
	"pet",
	"pet_form",
	"health_records",
	"health_record_form",
	"service_requests",
	"service_request_form",
	"not_found",
	"server_error",
}

// Renderer compila cada página contra el layout una sola vez al arrancar.
type Renderer struct {
	pages map[string]*template.Template
}

func New() *Renderer {
	m := make(map[string]*template.Template, len(pages))
	for _, p := range pages {
		m[p] = template.Must(template.ParseFS(files,
			"templates/layout.html",
			"templates/"+p+".html",
		))
	}
	return &Renderer{pages: m}
}

// Render ejecuta la página a un buffer primero: si el template falla no
// mandamos media página con status ya escrito.
func (rnd *Renderer) Render(w http.ResponseWriter, status int, page string, rc Context) {
	tmpl, ok := rnd.pages[page]
	if !ok {
		slog.Error("view: unknown page", "page", page)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", rc); err != nil {
		slog.Error("view: render failed", "page", page, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// NotFound renderiza la página 404.
func (rnd *Renderer) NotFound(w http.ResponseWriter, rc Context) {
	rnd.Render(w, http.StatusNotFound, "not_found", rc)
}

// ServerError renderiza la página 500 genérica. El detalle del error queda
// solo en logs, nunca en la respuesta.
func (rnd *Renderer) ServerError(w http.ResponseWriter, rc Context) {
	rnd.Render(w, http.StatusInternalServerError, "server_error", rc)
}
