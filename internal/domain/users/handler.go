package users

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"pet-care-center/internal/middleware"
	"pet-care-center/internal/session"
	"pet-care-center/internal/view"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, sessions *session.Store, cookies session.Cookies, rnd *view.Renderer) {
	r.Get("/", homeHandler(rnd))

	r.Get("/login", loginFormHandler(rnd))
	r.Post("/login", loginHandler(svc, sessions, cookies, rnd))

	r.Get("/register", registerFormHandler(rnd))
	r.Post("/register", registerHandler(svc, rnd))

	r.Get("/logout", logoutHandler(sessions, cookies))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func homeHandler(rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rnd.Render(w, http.StatusOK, "index", view.Context{User: middleware.ViewUser(r.Context())})
	}
}

func loginFormHandler(rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rnd.Render(w, http.StatusOK, "login", view.Context{User: middleware.ViewUser(r.Context())})
	}
}

func loginHandler(svc *Service, sessions *session.Store, cookies session.Cookies, rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if isJSON(r) {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				rnd.Render(w, http.StatusOK, "login", view.Context{Error: "Invalid credentials"})
				return
			}
		} else {
			if err := r.ParseForm(); err != nil {
				rnd.Render(w, http.StatusOK, "login", view.Context{Error: "Invalid credentials"})
				return
			}
			req.Email = r.PostFormValue("email")
			req.Password = r.PostFormValue("password")
		}

		u, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				rnd.Render(w, http.StatusOK, "login", view.Context{Error: "Invalid credentials"})
				return
			}
			slog.Error("login failed", "err", err)
			rnd.ServerError(w, view.Context{})
			return
		}

		token := sessions.Create(session.User{ID: u.ID, Name: u.Name, Email: u.Email})
		cookies.Set(w, token, sessions)
		http.Redirect(w, r, "/pets", http.StatusSeeOther)
	}
}

func registerFormHandler(rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rnd.Render(w, http.StatusOK, "register", view.Context{User: middleware.ViewUser(r.Context())})
	}
}

func registerHandler(svc *Service, rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if isJSON(r) {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				rnd.Render(w, http.StatusOK, "register", view.Context{Error: "Registration failed"})
				return
			}
		} else {
			if err := r.ParseForm(); err != nil {
				rnd.Render(w, http.StatusOK, "register", view.Context{Error: "Registration failed"})
				return
			}
			req.Name = r.PostFormValue("name")
			req.Email = r.PostFormValue("email")
			req.Password = r.PostFormValue("password")
		}

		_, err := svc.Register(r.Context(), RegisterInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				rnd.Render(w, http.StatusOK, "register", view.Context{Error: "Name, email and password are required"})
			case errors.Is(err, ErrWeakPassword):
				rnd.Render(w, http.StatusOK, "register", view.Context{Error: "Password must be at least 8 characters"})
			case errors.Is(err, ErrEmailExists):
				rnd.Render(w, http.StatusOK, "register", view.Context{Error: "That email is already registered"})
			default:
				slog.Error("register failed", "err", err)
				rnd.ServerError(w, view.Context{})
			}
			return
		}

		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}

func logoutHandler(sessions *session.Store, cookies session.Cookies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token := session.TokenFromRequest(r); token != "" {
			sessions.Destroy(token)
		}
		cookies.Clear(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func isJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}
