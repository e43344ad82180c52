package v1

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// authJWT returns a middleware enforcing Authorization: Bearer JWT (HS256)
// when a secret is configured. Health, readiness, metrics and dictionary
// endpoints stay open.
func authJWT(secret, issuer, audience string) func(http.Handler) http.Handler {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil
	}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}
	parser := jwt.NewParser(opts...)
	keyFn := func(*jwt.Token) (any, error) { return []byte(secret), nil }

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/healthz", "/readyz", "/metrics":
				next.ServeHTTP(w, r)
				return
			}
			if strings.HasPrefix(r.URL.Path, "/v1/dictionary/") {
				next.ServeHTTP(w, r)
				return
			}
			tok, ok := parseBearerToken(r)
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			if _, err := parser.Parse(tok, keyFn); err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func parseBearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if h == "" {
		return "", false
	}
	if !strings.HasPrefix(h, "Bearer ") && !strings.HasPrefix(h, "bearer ") {
		return "", false
	}
	return strings.TrimSpace(h[len("Bearer "):]), true
}
