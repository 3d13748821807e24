package memory

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pet-adoption-api/internal/domain/users"
)

type userRepo struct {
	mu   sync.RWMutex
	byID map[string]users.User
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byID: make(map[string]users.User),
	}
}

func (r *userRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Misma garantía que el índice único de Mongo sobre email.
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return users.User{}, users.ErrDuplicateEmail
		}
	}

	u.ID = primitive.NewObjectID().Hex()
	r.byID[u.ID] = u
	return u, nil
}

func (r *userRepo) GetAll(ctx context.Context) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]users.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return users.User{}, users.ErrInvalidID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *userRepo) Update(ctx context.Context, u users.User) (users.User, error) {
	if _, err := primitive.ObjectIDFromHex(u.ID); err != nil {
		return users.User{}, users.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[u.ID]; !ok {
		return users.User{}, users.ErrNotFound
	}
	for id, existing := range r.byID {
		if id != u.ID && existing.Email == u.Email {
			return users.User{}, users.ErrDuplicateEmail
		}
	}
	r.byID[u.ID] = u
	return u, nil
}

func (r *userRepo) Delete(ctx context.Context, id string) (users.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return users.User{}, users.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	delete(r.byID, id)
	return u, nil
}
