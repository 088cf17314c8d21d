package healthrecords

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
	// Alta y listado cuelgan de la mascota: el pet id viene del path,
	// nunca del body.
	r.Route("/pets/{petID}/health-records", func(hr chi.Router) {
		hr.Get("/", listRecordsHandler(svc, petsSvc, rnd))
		hr.Get("/new", newRecordFormHandler(petsSvc, rnd))
		hr.Post("/new", createRecordHandler(svc, petsSvc, rnd))
	})

	r.Get("/health-records/{recordID}/edit", editRecordFormHandler(svc, rnd))
	r.Post("/health-records/{recordID}/edit", updateRecordHandler(svc, rnd))
}

type recordRequest struct {
	VisitDate string `json:"visit_date"` // YYYY-MM-DD
	Diagnosis string `json:"diagnosis"`
	Treatment string `json:"treatment"`
}

// recordsPage alimenta el template health_records.
type recordsPage struct {
	Pet     pets.Pet
	Records []Record
}

// recordFormData alimenta el template health_record_form.
type recordFormData struct {
	Title     string
	Action    string
	VisitDate string
	Diagnosis string
	Treatment string
}

func listRecordsHandler(svc *Service, petsSvc *pets.Service, rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pet, ok := loadPet(w, r, petsSvc, rnd)
		if !ok {
			return
		}

		records, err := svc.ListByPet(r.Context(), pet.ID)
		if err != nil {
			slog.Error("list health records failed", "err", err)
			rnd.ServerError(w, view.Context{User: middleware.ViewUser(r.Context())})
			return
		}

		rnd.Render(w, http.StatusOK, "health_records", view.Context{
			User: middleware.ViewUser(r.Context()),
			Data: recordsPage{Pet: pet, Records: records},
		})
	}
}

func newRecordFormHandler(petsSvc *pets.Service, rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pet, ok := loadPet(w, r, petsSvc, rnd)
		if !ok {
			return
		}

		rnd.Render(w, http.StatusOK, "health_record_form", view.Context{
			User: middleware.ViewUser(r.Context()),
			Data: recordFormData{
				Title:  "New record for " + pet.Name,
				Action: "/pets/" + pet.ID + "/health-records/new",
			},
		})
	}
}

func createRecordHandler(svc *Service, petsSvc *pets.Service, rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pet, ok := loadPet(w, r, petsSvc, rnd)
		if !ok {
			return
		}

		req, err := parseRecordRequest(r)
		if err != nil {
			rnd.ServerError(w, view.Context{User: middleware.ViewUser(r.Context())})
			return
		}

		in, verr := req.toInput()
		if verr == "" {
			if _, err := svc.Create(r.Context(), pet.ID, in); err != nil {
				if errors.Is(err, ErrInvalidInput) {
					verr = "Visit date, diagnosis and treatment are required"
				} else {
					slog.Error("create health record failed", "err", err)
					rnd.ServerError(w, view.Context{User: middleware.ViewUser(r.Context())})
					return
				}
			}
		}

		if verr != "" {
			rnd.Render(w, http.StatusOK, "health_record_form", view.Context{
				User:  middleware.ViewUser(r.Context()),
				Error: verr,
				Data: recordFormData{
					Title:     "New record for " + pet.Name,
					Action:    "/pets/" + pet.ID + "/health-records/new",
					VisitDate: req.VisitDate,
					Diagnosis: req.Diagnosis,
					Treatment: req.Treatment,
				},
			})
			return
		}

		http.Redirect(w, r, "/pets/"+pet.ID+"/health-records", http.StatusSeeOther)
	}
}

func editRecordFormHandler(svc *Service, rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.GetByID(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				rnd.NotFound(w, view.Context{User: middleware.ViewUser(r.Context())})
				return
			}
			slog.Error("get health record failed", "err", err)
			rnd.ServerError(w, view.Context{User: middleware.ViewUser(r.Context())})
			return
		}

		rnd.Render(w, http.StatusOK, "health_record_form", view.Context{
			User: middleware.ViewUser(r.Context()),
			Data: recordFormData{
				Title:     "Edit record",
				Action:    "/health-records/" + rec.ID + "/edit",
				VisitDate: rec.VisitDate.Format("2006-01-02"),
				Diagnosis: rec.Diagnosis,
				Treatment: rec.Treatment,
			},
		})
	}
}

func updateRecordHandler(svc *Service, rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recordID := chi.URLParam(r, "recordID")

		req, err := parseRecordRequest(r)
		if err != nil {
			rnd.ServerError(w, view.Context{User: middleware.ViewUser(r.Context())})
			return
		}

		in, verr := req.toInput()
		if verr != "" {
			rnd.Render(w, http.StatusOK, "health_record_form", view.Context{
				User:  middleware.ViewUser(r.Context()),
				Error: verr,
				Data: recordFormData{
					Title:     "Edit record",
					Action:    "/health-records/" + recordID + "/edit",
					VisitDate: req.VisitDate,
					Diagnosis: req.Diagnosis,
					Treatment: req.Treatment,
				},
			})
			return
		}

		rec, err := svc.Update(r.Context(), recordID, in)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				rnd.NotFound(w, view.Context{User: middleware.ViewUser(r.Context())})
			default:
				slog.Error("update health record failed", "err", err)
				rnd.ServerError(w, view.Context{User: middleware.ViewUser(r.Context())})
			}
			return
		}

		http.Redirect(w, r, "/pets/"+rec.PetID+"/health-records", http.StatusSeeOther)
	}
}

// loadPet resuelve la mascota padre del path; 404 si no existe.
func loadPet(w http.ResponseWriter, r *http.Request, petsSvc *pets.Service, rnd *view.Renderer) (pets.Pet, bool) {
	pet, err := petsSvc.GetByID(r.Context(), chi.URLParam(r, "petID"))
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			rnd.NotFound(w, view.Context{User: middleware.ViewUser(r.Context())})
			return pets.Pet{}, false
		}
		slog.Error("get pet failed", "err", err)
		rnd.ServerError(w, view.Context{User: middleware.ViewUser(r.Context())})
		return pets.Pet{}, false
	}
	return pet, true
}

func parseRecordRequest(r *http.Request) (recordRequest, error) {
	var req recordRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return recordRequest{}, err
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return recordRequest{}, err
	}
	req.VisitDate = r.PostFormValue("visit_date")
	req.Diagnosis = r.PostFormValue("diagnosis")
	req.Treatment = r.PostFormValue("treatment")
	return req, nil
}

// toInput valida y convierte; devuelve el mensaje de error inline ("" = ok).
func (req recordRequest) toInput() (Input, string) {
	if strings.TrimSpace(req.VisitDate) == "" ||
		strings.TrimSpace(req.Diagnosis) == "" ||
		strings.TrimSpace(req.Treatment) == "" {
		return Input{}, "Visit date, diagnosis and treatment are required"
	}

	visit, err := time.Parse("2006-01-02", strings.TrimSpace(req.VisitDate))
	if err != nil {
		return Input{}, "Visit date must be YYYY-MM-DD"
	}

	return Input{
		VisitDate: visit,
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
	}, ""
}
