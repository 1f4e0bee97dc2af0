package controllers

import (
	"net/http"

	"github.com/shembeark/registrations-backend/api/responses"
	"github.com/shembeark/registrations-backend/internal/export"
	pkgerrors "github.com/shembeark/registrations-backend/pkg/errors"
	"github.com/shembeark/registrations-backend/pkg/logger"
)

// TriggerExport runs one export cycle on demand. Both the platform scheduler
// (GET) and a manual operator call (POST) land here.
func TriggerExport(svc export.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "export service unavailable"))
			return
		}

		result, err := svc.SendUnsent(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
