package users

import (
	"strings"
	"time"
)

// Role define los roles soportados.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "usuario"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User representa una cuenta registrada. Password guarda siempre el hash,
// nunca el texto plano.
type User struct {
	ID         string
	Email      string
	Name       string
	Surname    string
	Phone      string
	Password   string
	Role       Role
	Active     bool
	LastAccess time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName devuelve el nombre recortado, con el apellido cuando existe.
func FullName(u User) string {
	full := strings.TrimSpace(u.Name)
	if surname := strings.TrimSpace(u.Surname); surname != "" {
		full = full + " " + surname
	}
	return full
}

// IsAdmin reporta si la cuenta tiene rol administrador.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
