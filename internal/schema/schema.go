// Package schema evalúa reglas declarativas de validación por campo.
// Cada entidad arma su tabla de reglas a partir de los valores del registro
// y la pasa por Validate (sincrónico) o ValidateContext (con contexto).
package schema

import "context"

// Rule es una regla ya evaluada sobre un campo concreto.
// OK en false significa que la regla falló para el valor actual.
type Rule struct {
	Field   string
	Message string
	OK      bool
}

// ValidationError es el fallo de la primera regla que no pasó.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate recorre las reglas en orden y devuelve la primera que falla.
// Devuelve nil si todas pasan.
func Validate(rules []Rule) error {
	for _, r := range rules {
		if !r.OK {
			return &ValidationError{Field: r.Field, Message: r.Message}
		}
	}
	return nil
}

// ValidateContext es la entrada asíncrona: mismo veredicto que Validate
// para el mismo input, pero respeta cancelación del contexto.
func ValidateContext(ctx context.Context, rules []Rule) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return Validate(rules)
}
