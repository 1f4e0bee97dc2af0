package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/shembeark/registrations-backend/api/responses"
	pkgerrors "github.com/shembeark/registrations-backend/pkg/errors"
	"github.com/shembeark/registrations-backend/pkg/logger"
)

// CronAuth guards scheduler-triggered endpoints with a shared bearer secret.
// An empty configured secret leaves the endpoint open, which is only meant
// for local development.
func CronAuth(secret string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid cron secret"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
