package middleware

import (
	"context"
	"net/http"

	"pet-care-center/internal/session"
)

type ctxKey string

const userKey ctxKey = "user"

// SessionContext:
// - Si viene cookie de sesión válida => resuelve el usuario y lo setea en el context.
// - Si no hay cookie, o el token venció => el request sigue igual, sin usuario.
// La decisión de exigir login la toma RequireUser (o el handler).
func SessionContext(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := session.TokenFromRequest(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			u, ok := store.Get(token)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser devuelve el usuario de la sesión resuelto por SessionContext.
func CurrentUser(ctx context.Context) (session.User, bool) {
	v := ctx.Value(userKey)
	if v == nil {
		return session.User{}, false
	}
	u, ok := v.(session.User)
	return u, ok
}

// ViewUser es CurrentUser en la forma que espera view.Context (puntero o nil).
func ViewUser(ctx context.Context) *session.User {
	u, ok := CurrentUser(ctx)
	if !ok {
		return nil
	}
	return &u
}
