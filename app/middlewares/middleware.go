package middlewares

import (
	"log"
	"net/http"

	"github.com/Rakhulsr/go-marketplace/app/auth"
)

// VerifyBearerToken drops an Authorization header whose token fails signature,
// issuer, audience or expiry checks. The request continues anonymously.
func VerifyBearerToken(codec *auth.TokenCodec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := auth.BearerToken(r.Header.Get("Authorization"))
			if ok {
				if _, err := codec.Verify(token); err != nil {
					log.Printf("VerifyBearerToken: rejected token on %s: %v", r.URL.Path, err)
					r.Header.Del("Authorization")
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ResolveIdentity stores the caller identity in the request context.
func ResolveIdentity(resolver *auth.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := resolver.Resolve(r.Context(), r.Header.Get("Authorization"))
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
		})
	}
}
