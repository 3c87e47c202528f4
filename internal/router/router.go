package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-care-insights/docs"
	memcache "pet-care-insights/internal/adapters/cache/memory"
	mem "pet-care-insights/internal/adapters/storage/memory"
	pg "pet-care-insights/internal/adapters/storage/postgres"
	"pet-care-insights/internal/domain/care"
	"pet-care-insights/internal/domain/detection"
	"pet-care-insights/internal/domain/pets"
	"pet-care-insights/internal/middleware"
	"pet-care-insights/internal/platform/logger"
	"pet-care-insights/internal/platform/metrics"
	"pet-care-insights/internal/ports/auth"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: si es nil se arma un servicio solo con el heurístico local
	// y cache en memoria (útil en dev y tests).
	Detections *detection.Service

	MaxImageBytes int64

	Logger  logger.Logger
	Metrics *metrics.Metrics
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
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
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var petRepo pets.Repository
	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
	} else {
		petRepo = mem.NewPetRepo()
	}

	detections := opts.Detections
	if detections == nil {
		sel := detection.NewSelector(nil, detection.NewHeuristic(nil), detection.SelectorConfig{
			Logger:  log,
			Metrics: opts.Metrics,
		})
		detections = detection.NewService(sel, detection.ServiceConfig{
			Cache:   memcache.NewDetectionCache(),
			Logger:  log,
			Metrics: opts.Metrics,
		})
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	analyzer := care.NewAnalyzer(log.With(map[string]any{"module": "care"}), opts.Metrics)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	care.RegisterRoutes(r, analyzer, petsSvc)
	detection.RegisterRoutes(r, detections, opts.MaxImageBytes)

	return r
}
