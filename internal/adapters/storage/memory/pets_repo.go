// Package memory implementa los repositorios en memoria, espejando la
// semántica del adapter de Mongo (ids ObjectID, cast errors, unicidad).
// Respalda los tests y el modo dev sin base de datos.
package memory

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pet-adoption-api/internal/domain/pets"
)

type petRepo struct {
	mu   sync.RWMutex
	byID map[string]pets.Pet
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[string]pets.Pet),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = primitive.NewObjectID().Hex()
	r.byID[p.ID] = p
	return p, nil
}

func (r *petRepo) GetAll(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	// Orden estable por fecha de alta (consistencia en dev/tests).
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return pets.Pet{}, pets.ErrInvalidID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	if _, err := primitive.ObjectIDFromHex(p.ID); err != nil {
		return pets.Pet{}, pets.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[p.ID]; !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	r.byID[p.ID] = p
	return p, nil
}

func (r *petRepo) Delete(ctx context.Context, id string) (pets.Pet, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return pets.Pet{}, pets.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	delete(r.byID, id)
	return p, nil
}
