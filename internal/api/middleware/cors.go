package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS разрешает браузерные запросы с фронтенда
func CORS(allowedOrigins []string, maxAge int) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", HeaderUserID},
		AllowCredentials: false,
		MaxAge:           maxAge,
	})
}
