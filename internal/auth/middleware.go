package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/noah-isme/backend-resto/internal/common"
)

var errNoToken = errors.New("auth: token missing")

// Middleware resolves bearer tokens into a common.Principal on the request context.
type Middleware struct {
	Service *Service
}

// Authenticate attaches the principal when a valid token is present and passes anonymous requests through.
func (m Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p, err := m.principal(r); err == nil {
			r = r.WithContext(common.WithPrincipal(r.Context(), p))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth rejects requests without a valid token.
func (m Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := m.principal(r)
		if err != nil {
			var appErr *common.AppError
			if errors.As(err, &appErr) {
				common.WriteError(w, appErr)
				return
			}
			common.WriteError(w, common.Unauthorized("missing or invalid token"))
			return
		}
		next.ServeHTTP(w, r.WithContext(common.WithPrincipal(r.Context(), p)))
	})
}

func (m Middleware) principal(r *http.Request) (common.Principal, error) {
	if m.Service == nil {
		return common.Principal{}, errors.New("auth: service not configured")
	}
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return common.Principal{}, errNoToken
	}
	return m.Service.ParseAccessToken(header[7:])
}
