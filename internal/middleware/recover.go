package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"pet-care-center/internal/view"
)

// Recover atrapa panics del handler, loguea el stack server-side y responde
// la página 500 genérica. El stack jamás viaja en la respuesta.
func Recover(rnd *view.Renderer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					slog.Error("panic recovered",
						"method", r.Method,
						"path", r.URL.Path,
						"panic", rec,
						"stack", string(debug.Stack()),
					)
					rnd.ServerError(w, view.Context{User: ViewUser(r.Context())})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
