package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"pet-adoption-api/internal/adapters/auth/bcryptpw"
	"pet-adoption-api/internal/adapters/auth/jwtauth"
	mem "pet-adoption-api/internal/adapters/storage/memory"
	mongodb "pet-adoption-api/internal/adapters/storage/mongo"
	"pet-adoption-api/internal/config"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/domain/users"
	"pet-adoption-api/internal/middleware"
	"pet-adoption-api/internal/validation"
)

type Options struct {
	Config *config.Config
	Logger *zap.Logger

	// Opcional: si viene, usa Mongo. Si no, repos in-memory (dev/tests).
	DB *mongodb.Client
}

func New(opts Options) http.Handler {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Load()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.AllowContentTypes(
		"application/json",
		"application/x-www-form-urlencoded",
	))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	var (
		petRepo  pets.Repository
		userRepo users.Repository
	)
	if opts.DB != nil {
		petRepo = mongodb.NewPetsRepo(opts.DB)
		userRepo = mongodb.NewUsersRepo(opts.DB)
	} else {
		petRepo = mem.NewPetRepo()
		userRepo = mem.NewUserRepo()
	}

	tokens := jwtauth.New(cfg.JWTSecret)
	hasher := bcryptpw.New()
	guard := middleware.RequireAuth(tokens)

	policy := users.Policy{
		RequireSurname: cfg.RequireSurname,
		Phone:          validation.PhoneForRegion(cfg.PhoneRegion),
	}

	petsSvc := pets.NewService(petRepo)
	usersSvc := users.NewService(userRepo, hasher, tokens, policy)

	users.RegisterRoutes(r, usersSvc, guard)
	pets.RegisterRoutes(r, petsSvc, guard)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		middleware.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "route not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		middleware.WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	})

	return r
}
