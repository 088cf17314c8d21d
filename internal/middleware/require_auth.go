package middleware

import "net/http"

// RequireUser corta el paso a rutas protegidas: sin usuario en sesión se
// redirige a /login. No es un error, es una rama normal del flujo.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
