package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-adoption-api/internal/middleware"
	"pet-adoption-api/internal/platform/request"
	"pet-adoption-api/internal/schema"
)

// RegisterRoutes monta las rutas de usuarios bajo /api/usuarios.
// register y login son públicas; el resto exige el guard.
func RegisterRoutes(r chi.Router, svc *Service, guard func(http.Handler) http.Handler) {
	r.Route("/api/usuarios", func(ur chi.Router) {
		ur.Post("/register", registerHandler(svc))
		ur.Post("/login", loginHandler(svc))

		ur.Group(func(pr chi.Router) {
			pr.Use(guard)
			pr.Get("/profile", profileHandler(svc))
			pr.Get("/", getAllHandler(svc))
			pr.Get("/{id}", getOneHandler(svc))
			pr.Put("/{id}", updateHandler(svc))
			pr.Delete("/{id}", deleteHandler(svc))
		})
	})
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"nombre"`
	Surname  string `json:"apellido"`
	Phone    string `json:"telefono"`
	Password string `json:"clave"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"clave"`
}

type updateUserRequest struct {
	// Punteros para merge parcial: nil = no tocar.
	Email    *string `json:"email"`
	Name     *string `json:"nombre"`
	Surname  *string `json:"apellido"`
	Phone    *string `json:"telefono"`
	Password *string `json:"clave"`
	Role     *string `json:"rol"`
	Active   *bool   `json:"activo"`
}

// userResponse es la vista sanitizada: nunca incluye la clave.
type userResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"nombre"`
	Surname    string    `json:"apellido,omitempty"`
	Phone      string    `json:"telefono"`
	Role       string    `json:"rol"`
	Active     bool      `json:"activo"`
	LastAccess time.Time `json:"ultimoAcceso"`
	FullName   string    `json:"nombreCompleto"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := request.Decode(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		u, err := svc.Register(r.Context(), RegisterInput{
			Email:    req.Email,
			Name:     req.Name,
			Surname:  req.Surname,
			Phone:    req.Phone,
			Password: req.Password,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{
			"message": "user registered successfully",
			"user":    toUserResponse(u),
		})
	}
}

func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := request.Decode(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		u, token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"user":  toUserResponse(u),
			"token": token,
		})
	}
}

func profileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Token required")
			return
		}

		u, err := svc.Profile(r.Context(), claims.Email)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func getAllHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getOneHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateUserRequest
		if err := request.Decode(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		u, err := svc.Update(r.Context(), chi.URLParam(r, "id"), UpdateInput{
			Email:    req.Email,
			Name:     req.Name,
			Surname:  req.Surname,
			Phone:    req.Phone,
			Password: req.Password,
			Role:     req.Role,
			Active:   req.Active,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Surname:    u.Surname,
		Phone:      u.Phone,
		Role:       string(u.Role),
		Active:     u.Active,
		LastAccess: u.LastAccess,
		FullName:   FullName(u),
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// writeDomainError traduce errores del dominio al borde HTTP. Lo
// inesperado responde 500 genérico, sin filtrar detalle al cliente.
func writeDomainError(w http.ResponseWriter, err error) {
	var ve *schema.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, ErrDuplicateEmail):
		writeError(w, http.StatusBadRequest, "user already exists")
	case errors.Is(err, ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, ErrInvalidID):
		writeError(w, http.StatusBadRequest, "invalid user id")
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// (mascotas/usuarios) para no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
