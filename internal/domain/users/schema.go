package users

import (
	"context"
	"strings"

	"pet-adoption-api/internal/schema"
	"pet-adoption-api/internal/validation"
)

// Policy expone como configuración explícita las variantes observadas:
// qué validador de teléfono aplica y si el apellido es obligatorio.
type Policy struct {
	RequireSurname bool
	Phone          func(string) bool
}

func DefaultPolicy() Policy {
	return Policy{Phone: validation.PhoneLocal}
}

// rules arma la tabla declarativa del registro almacenado. La clave acá
// solo exige presencia: la complejidad se valida sobre el texto plano en
// PasswordRules, antes de hashear.
func (u User) rules(pol Policy) []schema.Rule {
	phone := pol.Phone
	if phone == nil {
		phone = validation.PhoneLocal
	}

	rules := []schema.Rule{
		{Field: "email", Message: "El email es requerido", OK: strings.TrimSpace(u.Email) != ""},
		{Field: "email", Message: "Por favor ingrese un email válido", OK: validation.Email(u.Email)},
		{Field: "nombre", Message: "El nombre es requerido", OK: strings.TrimSpace(u.Name) != ""},
		{Field: "nombre", Message: "El nombre debe tener entre 2 y 50 caracteres", OK: validation.LengthBetween(u.Name, 2, 50)},
	}

	if pol.RequireSurname {
		rules = append(rules,
			schema.Rule{Field: "apellido", Message: "El apellido es requerido", OK: strings.TrimSpace(u.Surname) != ""},
		)
	}
	if strings.TrimSpace(u.Surname) != "" {
		rules = append(rules,
			schema.Rule{Field: "apellido", Message: "El apellido no puede exceder 50 caracteres", OK: validation.MaxLength(u.Surname, 50)},
		)
	}

	return append(rules,
		schema.Rule{Field: "telefono", Message: "El teléfono es requerido", OK: strings.TrimSpace(u.Phone) != ""},
		schema.Rule{Field: "telefono", Message: "Por favor ingrese un número de teléfono válido", OK: phone(u.Phone)},
		schema.Rule{Field: "clave", Message: "La clave es requerida", OK: u.Password != ""},
		schema.Rule{Field: "rol", Message: string(u.Role) + " no es un rol válido", OK: u.Role.Valid()},
	)
}

// Validate corre la validación sincrónica del registro completo.
func (u User) Validate(pol Policy) error {
	return schema.Validate(u.rules(pol))
}

// ValidateContext corre las mismas reglas respetando el contexto.
func (u User) ValidateContext(ctx context.Context, pol Policy) error {
	return schema.ValidateContext(ctx, u.rules(pol))
}

// PasswordRules valida la clave en texto plano: mínimo de 8 siempre
// aplicado, más las clases requeridas.
func PasswordRules(plaintext string) []schema.Rule {
	return []schema.Rule{
		{Field: "clave", Message: "La clave es requerida", OK: plaintext != ""},
		{Field: "clave", Message: "La clave debe tener al menos 8 caracteres", OK: validation.PasswordLength(plaintext)},
		{Field: "clave", Message: "La clave debe contener al menos una mayúscula, una minúscula, un número y un caracter especial", OK: validation.PasswordClasses(plaintext)},
	}
}
