package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Regiones soportadas para la validación de teléfonos.
const (
	PhoneRegionLocal = "local"
	PhoneRegionIntl  = "intl"
)

type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	JWTSecret     string

	// PhoneRegion selecciona el validador de teléfono (local|intl).
	PhoneRegion string
	// RequireSurname hace obligatorio el campo apellido en usuarios.
	RequireSurname bool

	LogLevel  string
	LogFormat string
}

// Load lee configuración desde .env (si existe) y variables de entorno,
// con defaults razonables para desarrollo.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getenv("PORT", "3000"),
		MongoURI:       os.Getenv("MONGODB_URI"),
		MongoDatabase:  getenv("MONGODB_DATABASE", "adopciones"),
		JWTSecret:      getenv("JWT_TOKEN_SECRET", "dev-secret"),
		PhoneRegion:    getenv("PHONE_REGION", PhoneRegionLocal),
		RequireSurname: getenv("REQUIRE_SURNAME", "") == "true",
		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogFormat:      getenv("LOG_FORMAT", "text"),
	}

	// Compatibilidad con el esquema USER_DB/PASS_DB/SERVER_DB:
	// si no hay URI explícita, se arma una de Atlas.
	if cfg.MongoURI == "" {
		if server := os.Getenv("SERVER_DB"); server != "" {
			cfg.MongoURI = fmt.Sprintf(
				"mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
				os.Getenv("USER_DB"), os.Getenv("PASS_DB"), server,
			)
		}
	}

	if cfg.PhoneRegion != PhoneRegionIntl {
		cfg.PhoneRegion = PhoneRegionLocal
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
