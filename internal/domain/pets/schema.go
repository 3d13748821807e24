package pets

import (
	"context"
	"strings"
	"time"

	"pet-adoption-api/internal/schema"
	"pet-adoption-api/internal/validation"
)

// rules arma la tabla declarativa de reglas del registro. El orden importa:
// se reporta el primer fallo.
func (p Pet) rules(now time.Time) []schema.Rule {
	return []schema.Rule{
		{Field: "nombre", Message: "El nombre es requerido", OK: strings.TrimSpace(p.Name) != ""},
		{Field: "nombre", Message: "El nombre debe tener entre 2 y 50 caracteres", OK: validation.LengthBetween(p.Name, 2, 50)},
		{Field: "tipo", Message: "El tipo de mascota es requerido", OK: strings.TrimSpace(string(p.Kind)) != ""},
		{Field: "tipo", Message: string(p.Kind) + " no es un tipo de mascota válido", OK: p.Kind.Valid()},
		{Field: "raza", Message: "La raza no puede exceder 50 caracteres", OK: validation.MaxLength(p.Breed, 50)},
		{Field: "edad", Message: "La edad no puede ser negativa", OK: p.Age == nil || *p.Age >= 0},
		{Field: "edad", Message: "La edad no parece correcta", OK: p.Age == nil || *p.Age <= 30},
		{Field: "descripcion", Message: "La descripción no puede exceder 500 caracteres", OK: validation.MaxLength(p.Description, 500)},
		{Field: "fechaAdopcion", Message: "La fecha de adopción no puede ser futura", OK: p.AdoptionDate == nil || !p.AdoptionDate.After(now)},
	}
}

// Validate corre la validación sincrónica del registro completo.
func (p Pet) Validate() error {
	return schema.Validate(p.rules(time.Now()))
}

// ValidateContext corre las mismas reglas respetando el contexto.
func (p Pet) ValidateContext(ctx context.Context) error {
	return schema.ValidateContext(ctx, p.rules(time.Now()))
}
