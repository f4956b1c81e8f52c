package controller

import (
	"net/http"
	"slices"
	"strings"
)

const (
	allowedHeaders = "Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Request-Id"
	allowedMethods = "GET, POST, PUT, OPTIONS"
)

// WithCORS returns a middleware that sets CORS headers for requests coming
// from one of origins ("*" allows any origin) and short-circuits OPTIONS
// preflight requests with 204 No Content.
func WithCORS(origins []string) func(http.Handler) http.Handler {
	anyOrigin := len(origins) == 0 || slices.Contains(origins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			switch {
			case anyOrigin:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case origin != "" && slices.ContainsFunc(origins, func(o string) bool { return strings.EqualFold(o, origin) }):
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
			w.Header().Set("Access-Control-Allow-Methods", allowedMethods)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
