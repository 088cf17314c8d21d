package session

import "net/http"

// CookieName es el nombre de la cookie de sesión del browser.
const CookieName = "pcc_session"

// Cookies arma y limpia la cookie de sesión. Secure va por config
// (en dev local corremos sin TLS).
type Cookies struct {
	Secure bool
}

func (c Cookies) Set(w http.ResponseWriter, token string, store *Store) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(store.TTL().Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c Cookies) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// TokenFromRequest lee el token de la cookie; "" si no viene.
func TokenFromRequest(r *http.Request) string {
	ck, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return ck.Value
}
