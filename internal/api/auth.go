package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
)

// AuthConfig - общий секрет администратора.
// Передается при создании обработчика, не глобальная константа процесса.
type AuthConfig struct {
	Token string
}

func writeAuthError(w http.ResponseWriter, code int, message string) {
	j, err := json.Marshal(errorResponse{errorBody{"auth", message}})
	if err != nil {
		http.Error(w, message, code)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(j)
}

// MiddlewareAuth проверяет Bearer токен против общего секрета
func MiddlewareAuth(cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeAuthError(w, http.StatusForbidden, "Access denied. No token.")
				return
			}
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			if cfg.Token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(cfg.Token)) != 1 {
				writeAuthError(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
