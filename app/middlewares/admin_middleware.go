package middlewares

import (
	"log"
	"net/http"

	"github.com/Rakhulsr/go-marketplace/app/auth"
	"github.com/Rakhulsr/go-marketplace/app/helpers"
	"github.com/unrolled/render"
)

func RequireAuthenticated(rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !auth.IdentityFrom(r.Context()).IsAuthenticated() {
				helpers.JSONError(rnd, w, http.StatusUnauthorized, "Authentication required.", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole answers 401 for anonymous callers and 403 when the role is missing.
func RequireRole(rnd *render.Render, role auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := auth.IdentityFrom(r.Context())
			if !id.IsAuthenticated() {
				helpers.JSONError(rnd, w, http.StatusUnauthorized, "Authentication required.", nil)
				return
			}
			if !id.HasRole(role) {
				log.Printf("RequireRole: user %s without role %s tried %s %s", id.UserID(), role, r.Method, r.URL.Path)
				helpers.JSONError(rnd, w, http.StatusForbidden, "You do not have permission to access this resource.", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
