package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/shembeark/registrations-backend/internal/registrations"
	pkgerrors "github.com/shembeark/registrations-backend/pkg/errors"
	"github.com/shembeark/registrations-backend/pkg/logger"
	"github.com/shembeark/registrations-backend/pkg/pagination"
	"github.com/shembeark/registrations-backend/pkg/types"
)

type stubRegistrationService struct {
	registerFn func(ctx context.Context, input registrations.RegisterInput) (registrations.Summary, error)
	searchFn   func(ctx context.Context, query registrations.Query) (registrations.Page, error)
}

func (s *stubRegistrationService) Register(ctx context.Context, input registrations.RegisterInput) (registrations.Summary, error) {
	if s.registerFn != nil {
		return s.registerFn(ctx, input)
	}
	return registrations.Summary{}, nil
}

func (s *stubRegistrationService) Search(ctx context.Context, query registrations.Query) (registrations.Page, error) {
	if s.searchFn != nil {
		return s.searchFn(ctx, query)
	}
	return registrations.Page{}, nil
}

func controllerLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "api-test", Output: io.Discard})
}

func TestCreateRegistrationReturnsCreated(t *testing.T) {
	id := uuid.New()
	svc := &stubRegistrationService{
		registerFn: func(ctx context.Context, input registrations.RegisterInput) (registrations.Summary, error) {
			if input.Cellphone != "712345678" {
				t.Fatalf("unexpected cellphone %q", input.Cellphone)
			}
			return registrations.Summary{
				ID:               id,
				FirstName:        input.FirstName,
				Cellphone:        input.Cellphone,
				RegistrationDate: time.Now().UTC(),
			}, nil
		},
	}
	handler := CreateRegistration(svc, controllerLogger())

	body := `{"firstName":"Thandi","surname":"Mkhize","cellphone":"712345678","address":"12 Main Road","suburb":"Inanda","province":"KwaZulu-Natal","temple":"Ebuhleni"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/registrations", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var envelope types.SuccessEnvelope
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	data := envelope.Data.(map[string]any)
	if data["id"] != id.String() {
		t.Fatalf("unexpected id %v", data["id"])
	}
}

func TestCreateRegistrationRejectsMalformedJSON(t *testing.T) {
	handler := CreateRegistration(&stubRegistrationService{}, controllerLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/registrations", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateRegistrationMapsConflict(t *testing.T) {
	svc := &stubRegistrationService{
		registerFn: func(ctx context.Context, input registrations.RegisterInput) (registrations.Summary, error) {
			return registrations.Summary{}, pkgerrors.New(pkgerrors.CodeConflict, "cellphone already registered")
		},
	}
	handler := CreateRegistration(svc, controllerLogger())

	body := `{"firstName":"Thandi","surname":"Mkhize","cellphone":"712345678","address":"12 Main Road","suburb":"Inanda","province":"KwaZulu-Natal","temple":"Ebuhleni"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/registrations", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	var envelope types.ErrorEnvelope
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeConflict) {
		t.Fatalf("unexpected code %s", envelope.Error.Code)
	}
}

func TestListRegistrationsParsesQueryParams(t *testing.T) {
	svc := &stubRegistrationService{
		searchFn: func(ctx context.Context, query registrations.Query) (registrations.Page, error) {
			if query.Filter != "inanda" {
				t.Fatalf("unexpected filter %q", query.Filter)
			}
			if query.Page.Page != 2 || query.Page.PageSize != 25 {
				t.Fatalf("unexpected page params %+v", query.Page)
			}
			if !query.UnsentOnly {
				t.Fatal("expected unsentOnly to be set")
			}
			return registrations.Page{
				Items: []registrations.Summary{},
				Meta:  pagination.NewMeta(pagination.Params{Page: 2, PageSize: 25}, 60),
			}, nil
		},
	}
	handler := ListRegistrations(svc, controllerLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/registrations?page=2&limit=25&search=inanda&unsentOnly=true", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestListRegistrationsRejectsBadPage(t *testing.T) {
	handler := ListRegistrations(&stubRegistrationService{}, controllerLogger())

	for _, query := range []string{"?page=abc", "?page=0", "?limit=9999"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/registrations"+query, nil)
		w := httptest.NewRecorder()
		handler(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("query %q: expected 400, got %d", query, w.Code)
		}
	}
}
