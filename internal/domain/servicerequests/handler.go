package servicerequests

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"pet-care-center/internal/domain/pets"
	"pet-care-center/internal/middleware"
	"pet-care-center/internal/view"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service, rnd *view.Renderer) {
	r.Get("/service-requests", listRequestsHandler(svc, rnd))
	r.Get("/service-requests/new", newRequestFormHandler(petsSvc, rnd))
	r.Post("/service-requests", createRequestHandler(svc, petsSvc, rnd))
}

// createRequest acepta el body del form o JSON. Si el cliente manda un
// campo userId se ignora: el requester sale de la sesión.
type createRequest struct {
	RequestType     string `json:"requestType"`
	RequestDate     string `json:"requestDate"` // YYYY-MM-DD
	RequestLocation string `json:"requestLocation"`
	PetID           string `json:"petId"`
}

type requestFormPage struct {
	Pets []pets.PetView
}

func listRequestsHandler(svc *Service, rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListViews(r.Context())
		if err != nil {
			slog.Error("list service requests failed", "err", err)
			rnd.ServerError(w, view.Context{User: middleware.ViewUser(r.Context())})
			return
		}
		rnd.Render(w, http.StatusOK, "service_requests", view.Context{
			User: middleware.ViewUser(r.Context()),
			Data: items,
		})
	}
}

func newRequestFormHandler(petsSvc *pets.Service, rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// El form necesita todas las mascotas para el selector.
		allPets, err := petsSvc.ListViews(r.Context())
		if err != nil {
			slog.Error("list pets failed", "err", err)
			rnd.ServerError(w, view.Context{User: middleware.ViewUser(r.Context())})
			return
		}
		rnd.Render(w, http.StatusOK, "service_request_form", view.Context{
			User: middleware.ViewUser(r.Context()),
			Data: requestFormPage{Pets: allPets},
		})
	}
}

func createRequestHandler(svc *Service, petsSvc *pets.Service, rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.CurrentUser(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		req, err := parseCreateRequest(r)
		if err != nil {
			rnd.ServerError(w, view.Context{User: &user})
			return
		}

		renderInvalid := func(msg string) {
			allPets, err := petsSvc.ListViews(r.Context())
			if err != nil {
				slog.Error("list pets failed", "err", err)
				rnd.ServerError(w, view.Context{User: &user})
				return
			}
			rnd.Render(w, http.StatusOK, "service_request_form", view.Context{
				User:  &user,
				Error: msg,
				Data:  requestFormPage{Pets: allPets},
			})
		}

		if req.RequestType == "" || req.RequestDate == "" || req.RequestLocation == "" || req.PetID == "" {
			renderInvalid("All fields are required")
			return
		}

		date, err := time.Parse("2006-01-02", req.RequestDate)
		if err != nil {
			renderInvalid("Date must be YYYY-MM-DD")
			return
		}

		// La mascota elegida en el selector tiene que existir.
		if _, err := petsSvc.GetByID(r.Context(), req.PetID); err != nil {
			if errors.Is(err, pets.ErrNotFound) {
				renderInvalid("Unknown pet")
				return
			}
			slog.Error("get pet failed", "err", err)
			rnd.ServerError(w, view.Context{User: &user})
			return
		}

		if _, err := svc.Create(r.Context(), user.ID, CreateInput{
			Type:     req.RequestType,
			Date:     date,
			Location: req.RequestLocation,
			PetID:    req.PetID,
		}); err != nil {
			if errors.Is(err, ErrInvalidInput) {
				renderInvalid("All fields are required")
				return
			}
			slog.Error("create service request failed", "err", err)
			rnd.ServerError(w, view.Context{User: &user})
			return
		}

		http.Redirect(w, r, "/service-requests", http.StatusSeeOther)
	}
}

func parseCreateRequest(r *http.Request) (createRequest, error) {
	var req createRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return createRequest{}, err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return createRequest{}, err
		}
		req.RequestType = r.PostFormValue("requestType")
		req.RequestDate = r.PostFormValue("requestDate")
		req.RequestLocation = r.PostFormValue("requestLocation")
		req.PetID = r.PostFormValue("petId")
	}

	req.RequestType = strings.TrimSpace(req.RequestType)
	req.RequestDate = strings.TrimSpace(req.RequestDate)
	req.RequestLocation = strings.TrimSpace(req.RequestLocation)
	req.PetID = strings.TrimSpace(req.PetID)
	return req, nil
}
