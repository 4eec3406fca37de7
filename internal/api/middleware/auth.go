package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/jwt"
)

const (
	msgMissingToken = "missing bearer token"
	msgInvalidToken = "invalid token"
	msgExpiredToken = "token expired"
)

// Auth rejects requests without a valid bearer token and stores the
// token's user and role in the request context.
func Auth(validator TokenValidator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				if errors.Is(err, jwt.ErrExpiredToken) {
					handlers.RespondUnauthorized(w, msgExpiredToken)
					return
				}
				logger.Warn("Auth: rejected token for %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			role := domain.Role(claims.Role)
			if !role.IsValid() {
				logger.Warn("Auth: token carries unknown role %q", claims.Role)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), claims.UserID, role)))
		})
	}
}

// RequirePermission answers 403 unless the caller's role grants perm.
// Must run after Auth.
func RequirePermission(perm domain.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRole(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, handlers.MsgUnauthorized)
				return
			}
			if !domain.Can(role, perm) {
				handlers.RespondForbidden(w, handlers.MsgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
