package pets

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indica que el id no corresponde a ningún registro.
	ErrNotFound = errors.New("pet not found")
	// ErrInvalidID indica un identificador malformado (cast error),
	// distinto de un not-found.
	ErrInvalidID = errors.New("invalid pet id")
)

type Repository interface {
	Create(ctx context.Context, p Pet) (Pet, error)
	GetAll(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id string) (Pet, error)
	Update(ctx context.Context, p Pet) (Pet, error)
	// Delete devuelve el registro eliminado.
	Delete(ctx context.Context, id string) (Pet, error)
}
