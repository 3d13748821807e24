package users

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indica que no existe registro para el id o email dado.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidID indica un identificador malformado (cast error).
	ErrInvalidID = errors.New("invalid user id")
	// ErrDuplicateEmail indica violación de unicidad de email. La
	// constraint de storage es la autoritativa: cierra la carrera del
	// check-then-create en el registro.
	ErrDuplicateEmail = errors.New("user already exists")
	// ErrInvalidCredentials es uniforme entre usuario desconocido y clave
	// incorrecta para no permitir enumerar cuentas.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetAll(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, u User) (User, error)
	// Delete devuelve el registro eliminado.
	Delete(ctx context.Context, id string) (User, error)
}
