package pets

import (
	"context"
	"strings"
	"time"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name         string
	Kind         string
	Breed        string
	Age          *int
	Description  string
	Adopted      *bool
	AdoptionDate *time.Time
}

type UpdateInput struct {
	// Punteros para merge parcial: nil = conservar el valor actual.
	Name         *string
	Kind         *string
	Breed        *string
	Age          *int
	Description  *string
	Adopted      *bool
	AdoptionDate *time.Time
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	now := s.now()
	p := Pet{
		Name:         strings.TrimSpace(in.Name),
		Kind:         Kind(strings.TrimSpace(in.Kind)),
		Breed:        strings.TrimSpace(in.Breed),
		Age:          in.Age,
		Description:  strings.TrimSpace(in.Description),
		AdoptionDate: in.AdoptionDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.Adopted != nil {
		p.Adopted = *in.Adopted
	}

	if err := p.ValidateContext(ctx); err != nil {
		return Pet{}, err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) GetAll(ctx context.Context) ([]Pet, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

// Update aplica merge parcial: carga el registro, pisa solo los campos
// enviados y revalida el resultado completo antes de persistir. Un merge
// inválido no persiste nada.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	merged := current
	if in.Name != nil {
		merged.Name = strings.TrimSpace(*in.Name)
	}
	if in.Kind != nil {
		merged.Kind = Kind(strings.TrimSpace(*in.Kind))
	}
	if in.Breed != nil {
		merged.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Age != nil {
		merged.Age = in.Age
	}
	if in.Description != nil {
		merged.Description = strings.TrimSpace(*in.Description)
	}
	if in.Adopted != nil {
		merged.Adopted = *in.Adopted
	}
	if in.AdoptionDate != nil {
		merged.AdoptionDate = in.AdoptionDate
	}
	merged.UpdatedAt = s.now()

	if err := merged.ValidateContext(ctx); err != nil {
		return Pet{}, err
	}
	return s.repo.Update(ctx, merged)
}

func (s *Service) Delete(ctx context.Context, id string) (Pet, error) {
	return s.repo.Delete(ctx, id)
}
