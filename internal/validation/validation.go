// Package validation reúne los predicados puros de formato de campos.
// Son funciones con nombre, testeables por separado; los mensajes por campo
// viven en las tablas de reglas de cada entidad (ver internal/schema).
package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	emailRe = regexp.MustCompile(`^[\w-]+(\.[\w-]+)*@([\w-]+\.)+[a-zA-Z]{2,7}$`)

	// Variante internacional: + opcional, primer dígito distinto de cero.
	phoneIntlRe = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	// Variante local: prefijo 011 u 11, grupos de 4 separados por un único
	// espacio o guion, o todo junto. Sin puntos ni prefijo de país.
	phoneLocalRe = regexp.MustCompile(`^(?:011|11)(?: \d{4} \d{4}|-\d{4}-\d{4}|\d{4}\d{4})$`)
)

// SpecialChars es el conjunto fijo de caracteres especiales admitidos
// en claves.
const SpecialChars = "@$!%*?&"

// MinPasswordLength es el largo mínimo de la clave.
const MinPasswordLength = 8

// NormalizeEmail recorta espacios y baja a minúsculas antes de validar
// o persistir.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Email valida el formato local@dominio.tld sobre el valor ya normalizado.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// PhoneIntl valida un número en formato internacional.
func PhoneIntl(s string) bool {
	return phoneIntlRe.MatchString(s)
}

// PhoneLocal valida un número local de 10 dígitos con prefijo 011/11.
func PhoneLocal(s string) bool {
	return phoneLocalRe.MatchString(s)
}

// PhoneForRegion devuelve el validador de teléfono según la región
// configurada ("intl" o cualquier otro valor => local).
func PhoneForRegion(region string) func(string) bool {
	if strings.EqualFold(region, "intl") {
		return PhoneIntl
	}
	return PhoneLocal
}

// PasswordLength exige el largo mínimo, separado del chequeo de clases
// para que el mínimo quede siempre aplicado.
func PasswordLength(s string) bool {
	return utf8.RuneCountInString(s) >= MinPasswordLength
}

// PasswordClasses exige al menos una minúscula, una mayúscula, un dígito
// y un caracter del conjunto especial fijo.
func PasswordClasses(s string) bool {
	var lower, upper, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(SpecialChars, r):
			special = true
		}
	}
	return lower && upper && digit && special
}

// Password combina largo y clases.
func Password(s string) bool {
	return PasswordLength(s) && PasswordClasses(s)
}

// LengthBetween valida el largo en runas del valor recortado.
func LengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	return n >= min && n <= max
}

// MaxLength valida el largo máximo en runas del valor recortado.
func MaxLength(s string, max int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) <= max
}
