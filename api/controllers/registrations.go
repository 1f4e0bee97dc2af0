package controllers

import (
	"net/http"

	"github.com/shembeark/registrations-backend/api/responses"
	"github.com/shembeark/registrations-backend/api/validators"
	"github.com/shembeark/registrations-backend/internal/registrations"
	pkgerrors "github.com/shembeark/registrations-backend/pkg/errors"
	"github.com/shembeark/registrations-backend/pkg/logger"
	"github.com/shembeark/registrations-backend/pkg/pagination"
)

const maxSearchLen = 100

// CreateRegistration handles public form submissions.
func CreateRegistration(svc registrations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "registration service unavailable"))
			return
		}

		var body registrations.RegisterInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary, err := svc.Register(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, summary)
	}
}

// ListRegistrations returns a filtered, paginated admin listing.
func ListRegistrations(svc registrations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "registration service unavailable"))
			return
		}

		page, err := validators.ParseQueryInt(r, "page", 1, 1, 1_000_000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultPageSize, 1, pagination.MaxPageSize)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter, err := validators.ParseQueryString(r, "search", maxSearchLen)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		unsentOnly, err := validators.ParseQueryBool(r, "unsentOnly", false)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Search(r.Context(), registrations.Query{
			Filter:     filter,
			UnsentOnly: unsentOnly,
			Page:       pagination.Params{Page: page, PageSize: limit},
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
