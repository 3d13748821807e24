package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-adoption-api/internal/platform/request"
	"pet-adoption-api/internal/schema"
)

// RegisterRoutes monta el CRUD de mascotas bajo /api/mascotas.
// Las lecturas son públicas; las mutaciones requieren el guard.
func RegisterRoutes(r chi.Router, svc *Service, guard func(http.Handler) http.Handler) {
	r.Route("/api/mascotas", func(mr chi.Router) {
		mr.Get("/", getAllHandler(svc))
		mr.Get("/{id}", getOneHandler(svc))

		mr.Group(func(pr chi.Router) {
			pr.Use(guard)
			pr.Post("/", createHandler(svc))
			pr.Put("/{id}", updateHandler(svc))
			pr.Delete("/{id}", deleteHandler(svc))
		})
	})
}

type createPetRequest struct {
	Name         string  `json:"nombre"`
	Kind         string  `json:"tipo"`
	Breed        string  `json:"raza"`
	Age          *int    `json:"edad"`
	Description  string  `json:"descripcion"`
	Adopted      *bool   `json:"adoptado"`
	AdoptionDate *string `json:"fechaAdopcion"` // YYYY-MM-DD opcional
}

type updatePetRequest struct {
	// Punteros para merge parcial: nil = no tocar.
	Name         *string `json:"nombre"`
	Kind         *string `json:"tipo"`
	Breed        *string `json:"raza"`
	Age          *int    `json:"edad"`
	Description  *string `json:"descripcion"`
	Adopted      *bool   `json:"adoptado"`
	AdoptionDate *string `json:"fechaAdopcion"`
}

type petResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"nombre"`
	Kind         string     `json:"tipo"`
	Breed        string     `json:"raza,omitempty"`
	Age          *int       `json:"edad,omitempty"`
	Description  string     `json:"descripcion,omitempty"`
	Adopted      bool       `json:"adoptado"`
	AdoptionDate *time.Time `json:"fechaAdopcion,omitempty"`
	HumanAge     *int       `json:"edadHumana"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := request.Decode(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		adoptionDate, ok := parseDate(req.AdoptionDate)
		if !ok {
			writeError(w, http.StatusBadRequest, "fechaAdopcion must be YYYY-MM-DD")
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:         req.Name,
			Kind:         req.Kind,
			Breed:        req.Breed,
			Age:          req.Age,
			Description:  req.Description,
			Adopted:      req.Adopted,
			AdoptionDate: adoptionDate,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

func getAllHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getOneHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updatePetRequest
		if err := request.Decode(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var adoptionDate *time.Time
		if req.AdoptionDate != nil {
			parsed, ok := parseDate(req.AdoptionDate)
			if !ok {
				writeError(w, http.StatusBadRequest, "fechaAdopcion must be YYYY-MM-DD")
				return
			}
			adoptionDate = parsed
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "id"), UpdateInput{
			Name:         req.Name,
			Kind:         req.Kind,
			Breed:        req.Breed,
			Age:          req.Age,
			Description:  req.Description,
			Adopted:      req.Adopted,
			AdoptionDate: adoptionDate,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:           p.ID,
		Name:         p.Name,
		Kind:         string(p.Kind),
		Breed:        p.Breed,
		Age:          p.Age,
		Description:  p.Description,
		Adopted:      p.Adopted,
		AdoptionDate: p.AdoptionDate,
		HumanAge:     HumanAge(p),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func parseDate(s *string) (*time.Time, bool) {
	if s == nil || *s == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// writeDomainError traduce errores del dominio al borde HTTP.
// Lo inesperado responde 500 genérico, sin filtrar detalle al cliente.
func writeDomainError(w http.ResponseWriter, err error) {
	var ve *schema.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, ErrInvalidID):
		writeError(w, http.StatusBadRequest, "invalid pet id")
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "pet not found")
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
