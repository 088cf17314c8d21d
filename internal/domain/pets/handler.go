package pets

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"pet-care-center/internal/middleware"
	"pet-care-center/internal/uploads"
	"pet-care-center/internal/view"

	"github.com/go-chi/chi/v5"
)

// Límite de memoria para el parse multipart (lo que exceda va a disco temp).
const maxUploadMemory = 10 << 20

func RegisterRoutes(r chi.Router, svc *Service, sink *uploads.Sink, rnd *view.Renderer) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc, rnd))
		pr.Get("/new", newPetFormHandler(rnd))
		pr.Post("/", createPetHandler(svc, sink, rnd))

		pr.Get("/{petID}", getPetHandler(svc, rnd))
		pr.Get("/{petID}/edit", editPetFormHandler(svc, rnd))
		pr.Post("/{petID}/edit", updatePetHandler(svc, sink, rnd))
	})
}

// petFormData es lo que consume el template pet_form (alta y edición).
type petFormData struct {
	Title  string
	Action string
	Pet    Pet
}

func listPetsHandler(svc *Service, rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListViews(r.Context())
		if err != nil {
			slog.Error("list pets failed", "err", err)
			rnd.ServerError(w, view.Context{User: middleware.ViewUser(r.Context())})
			return
		}
		rnd.Render(w, http.StatusOK, "pets", view.Context{
			User: middleware.ViewUser(r.Context()),
			Data: items,
		})
	}
}

func getPetHandler(svc *Service, rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pv, err := svc.GetView(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				rnd.NotFound(w, view.Context{User: middleware.ViewUser(r.Context())})
				return
			}
			slog.Error("get pet failed", "err", err)
			rnd.ServerError(w, view.Context{User: middleware.ViewUser(r.Context())})
			return
		}
		rnd.Render(w, http.StatusOK, "pet", view.Context{
			User: middleware.ViewUser(r.Context()),
			Data: pv,
		})
	}
}

func newPetFormHandler(rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rnd.Render(w, http.StatusOK, "pet_form", view.Context{
			User: middleware.ViewUser(r.Context()),
			Data: petFormData{Title: "Add a pet", Action: "/pets"},
		})
	}
}

func createPetHandler(svc *Service, sink *uploads.Sink, rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.CurrentUser(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		form, err := parsePetForm(r)
		if err != nil {
			rnd.ServerError(w, view.Context{User: &user})
			return
		}
		defer form.close()

		renderInvalid := func() {
			rnd.Render(w, http.StatusOK, "pet_form", view.Context{
				User:  &user,
				Error: "Name, type and breed are required",
				Data: petFormData{
					Title:  "Add a pet",
					Action: "/pets",
					Pet:    Pet{Name: form.name, Type: form.typ, Breed: form.breed},
				},
			})
		}

		if form.name == "" || form.typ == "" || form.breed == "" {
			renderInvalid()
			return
		}

		imagePath := ""
		if form.file != nil {
			imagePath, err = sink.Store(form.file, form.fileName)
			if err != nil {
				slog.Error("store upload failed", "err", err)
				rnd.ServerError(w, view.Context{User: &user})
				return
			}
		}

		if _, err := svc.Create(r.Context(), user.ID, CreateInput{
			Name:  form.name,
			Type:  form.typ,
			Breed: form.breed,
			Image: imagePath,
		}); err != nil {
			if errors.Is(err, ErrInvalidInput) {
				renderInvalid()
				return
			}
			slog.Error("create pet failed", "err", err)
			rnd.ServerError(w, view.Context{User: &user})
			return
		}

		http.Redirect(w, r, "/pets", http.StatusSeeOther)
	}
}

func editPetFormHandler(svc *Service, rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.CurrentUser(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		petID := chi.URLParam(r, "petID")
		p, err := svc.GetByID(r.Context(), petID)
		if err != nil || p.OwnerID != user.ID {
			if err != nil && !errors.Is(err, ErrNotFound) {
				slog.Error("get pet failed", "err", err)
				rnd.ServerError(w, view.Context{User: &user})
				return
			}
			rnd.NotFound(w, view.Context{User: &user})
			return
		}

		rnd.Render(w, http.StatusOK, "pet_form", view.Context{
			User: &user,
			Data: petFormData{
				Title:  "Edit " + p.Name,
				Action: "/pets/" + p.ID + "/edit",
				Pet:    p,
			},
		})
	}
}

func updatePetHandler(svc *Service, sink *uploads.Sink, rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.CurrentUser(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		petID := chi.URLParam(r, "petID")

		form, err := parsePetForm(r)
		if err != nil {
			rnd.ServerError(w, view.Context{User: &user})
			return
		}
		defer form.close()

		in := UpdateInput{}
		if form.name != "" {
			in.Name = &form.name
		}
		if form.typ != "" {
			in.Type = &form.typ
		}
		if form.breed != "" {
			in.Breed = &form.breed
		}

		// Solo si vino archivo nuevo se toca la columna image; si no,
		// el path guardado se preserva.
		if form.file != nil {
			imagePath, err := sink.Store(form.file, form.fileName)
			if err != nil {
				slog.Error("store upload failed", "err", err)
				rnd.ServerError(w, view.Context{User: &user})
				return
			}
			in.Image = &imagePath
		}

		p, err := svc.Update(r.Context(), petID, user.ID, in)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				rnd.NotFound(w, view.Context{User: &user})
			case errors.Is(err, ErrInvalidInput):
				rnd.Render(w, http.StatusOK, "pet_form", view.Context{
					User:  &user,
					Error: "Name, type and breed are required",
					Data: petFormData{
						Title:  "Edit pet",
						Action: "/pets/" + petID + "/edit",
						Pet:    Pet{Name: form.name, Type: form.typ, Breed: form.breed},
					},
				})
			default:
				slog.Error("update pet failed", "err", err)
				rnd.ServerError(w, view.Context{User: &user})
			}
			return
		}

		http.Redirect(w, r, "/pets/"+p.ID, http.StatusSeeOther)
	}
}

// petForm es el resultado de parsear el POST (urlencoded o multipart).
// file queda nil cuando no se subió foto.
type petForm struct {
	name, typ, breed string
	file             multipart.File
	fileName         string
}

func (f *petForm) close() {
	if f.file != nil {
		_ = f.file.Close()
	}
}

func parsePetForm(r *http.Request) (*petForm, error) {
	ct := r.Header.Get("Content-Type")

	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			return nil, err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
	}

	f := &petForm{
		name:  strings.TrimSpace(r.PostFormValue("name")),
		typ:   strings.TrimSpace(r.PostFormValue("type")),
		breed: strings.TrimSpace(r.PostFormValue("breed")),
	}

	if r.MultipartForm != nil {
		file, header, err := r.FormFile("image")
		switch {
		case err == nil:
			f.file = file
			f.fileName = header.Filename
		case errors.Is(err, http.ErrMissingFile):
			// sin foto, rama normal
		default:
			return nil, err
		}
	}

	return f, nil
}
