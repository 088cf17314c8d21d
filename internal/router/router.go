package router

import (
	"database/sql"
	"net/http"
	"time"

	mem "pet-care-center/internal/adapters/storage/memory"
	pg "pet-care-center/internal/adapters/storage/postgres"
	"pet-care-center/internal/domain/healthrecords"
	"pet-care-center/internal/domain/pets"
	"pet-care-center/internal/domain/servicerequests"
	"pet-care-center/internal/domain/users"
	"pet-care-center/internal/middleware"
	"pet-care-center/internal/session"
	"pet-care-center/internal/uploads"
	"pet-care-center/internal/view"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory (modo dev/tests).
	DB *sql.DB

	UploadsDir    string
	SessionTTL    time.Duration
	SecureCookies bool
}

func NewRouter(opts Options) http.Handler {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 24 * time.Hour
	}

	rnd := view.New()
	sink := uploads.NewSink(opts.UploadsDir)
	sessions := session.NewStore(opts.SessionTTL)
	cookies := session.Cookies{Secure: opts.SecureCookies}

	var (
		userRepo users.Repository
		petRepo  pets.Repository
		hrRepo   healthrecords.Repository
		srRepo   servicerequests.Repository
	)

	if opts.DB != nil {
		userRepo = pg.NewUsersRepo(opts.DB)
		petRepo = pg.NewPetsRepo(opts.DB)
		hrRepo = pg.NewHealthRecordsRepo(opts.DB)
		srRepo = pg.NewServiceRequestsRepo(opts.DB)
	} else {
		musers := mem.NewUserRepo()
		mpets := mem.NewPetRepo(musers)
		userRepo = musers
		petRepo = mpets
		hrRepo = mem.NewHealthRecordRepo()
		srRepo = mem.NewServiceRequestRepo(mpets, musers)
	}

	// Services por módulo
	usersSvc := users.NewService(userRepo)
	petsSvc := pets.NewService(petRepo)
	hrSvc := healthrecords.NewService(hrRepo)
	srSvc := servicerequests.NewService(srRepo)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recover(rnd))
	r.Use(middleware.SessionContext(sessions))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Fotos subidas, públicas y servibles por path relativo.
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(sink.Dir()))))

	// Rutas públicas: home, login, register, logout.
	users.RegisterRoutes(r, usersSvc, sessions, cookies, rnd)

	// Todo lo demás requiere sesión (variante estricta).
	r.Group(func(gr chi.Router) {
		gr.Use(middleware.RequireUser)

		pets.RegisterRoutes(gr, petsSvc, sink, rnd)
		healthrecords.RegisterRoutes(gr, hrSvc, petsSvc, rnd)
		servicerequests.RegisterRoutes(gr, srSvc, petsSvc, rnd)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		rnd.NotFound(w, view.Context{User: middleware.ViewUser(r.Context())})
	})

	return r
}
