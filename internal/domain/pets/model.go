package pets

import "time"

// Kind define los tipos de mascota soportados.
type Kind string

const (
	KindDog    Kind = "Perro"
	KindCat    Kind = "Gato"
	KindRabbit Kind = "Conejo"
)

// Valid reporta si el tipo pertenece al enum.
func (k Kind) Valid() bool {
	switch k {
	case KindDog, KindCat, KindRabbit:
		return true
	}
	return false
}

// Pet representa una mascota en adopción. Los registros no pertenecen a
// ningún usuario.
type Pet struct {
	ID           string
	Name         string
	Kind         Kind
	Breed        string
	Age          *int
	Description  string
	Adopted      bool
	AdoptionDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HumanAge calcula la edad en años humanos: x7 para perros, x6 para gatos,
// sin cambio para el resto. Devuelve nil si la edad no está cargada.
func HumanAge(p Pet) *int {
	if p.Age == nil {
		return nil
	}
	age := *p.Age
	switch p.Kind {
	case KindDog:
		age *= 7
	case KindCat:
		age *= 6
	}
	return &age
}
