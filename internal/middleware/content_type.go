package middleware

import (
	"net/http"
	"strings"
)

// AllowContentTypes exige que los requests no-GET con cuerpo declaren uno
// de los content types admitidos; si no, 415. Requests sin cuerpo pasan.
func AllowContentTypes(contentTypes ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(contentTypes))
	for _, ct := range contentTypes {
		allowed[strings.ToLower(strings.TrimSpace(ct))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.ContentLength == 0 {
				next.ServeHTTP(w, r)
				return
			}

			ct := strings.ToLower(strings.TrimSpace(r.Header.Get("Content-Type")))
			if i := strings.Index(ct, ";"); i >= 0 {
				ct = strings.TrimSpace(ct[:i])
			}

			if _, ok := allowed[ct]; !ok {
				WriteJSON(w, http.StatusUnsupportedMediaType, map[string]string{"error": "unsupported media type"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
