package router

import (
	"database/sql"
	"net/http"

	_ "pet-adoption/docs"
	mem "pet-adoption/internal/adapters/storage/memory"
	pg "pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/domain/adoption"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/observability"
	"pet-adoption/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcionales: nil => noop / discard.
	Logger      logger.Logger
	Publisher   adoption.EventPublisher
	Instruments *observability.Instruments
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		petRepo      pets.Repository
		interestRepo adoption.Repository
	)

	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		interestRepo = pg.NewInterestsRepo(opts.DB)
	} else {
		petRepo = mem.NewPetRepo()
		interestRepo = mem.NewInterestRepo()
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	adoptionCore := adoption.NewService(interestRepo, petLookup{svc: petsSvc},
		adoption.WithPublisher(opts.Publisher),
		adoption.WithLogger(log),
	)
	adoptionSvc := adoption.NewInstrumented(adoptionCore,
		opts.Instruments.Tracer("pet-adoption/adoption"),
		opts.Instruments.Meter("pet-adoption/adoption"),
		log,
	)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	adoption.RegisterRoutes(r, adoptionSvc, petsSvc)

	return r
}
