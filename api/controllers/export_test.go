package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shembeark/registrations-backend/internal/export"
	pkgerrors "github.com/shembeark/registrations-backend/pkg/errors"
	"github.com/shembeark/registrations-backend/pkg/types"
)

type stubExportService struct {
	result export.Result
	err    error
}

func (s *stubExportService) SendUnsent(ctx context.Context) (export.Result, error) {
	if s.err != nil {
		return export.Result{}, s.err
	}
	return s.result, nil
}

func TestTriggerExportReturnsResult(t *testing.T) {
	svc := &stubExportService{result: export.Result{
		Count:     7,
		EmailID:   "<abc@smtp>",
		Marked:    7,
		Timestamp: time.Now().UTC(),
		Message:   "registrations sent successfully",
	}}
	handler := TriggerExport(svc, controllerLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/export/registrations", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var envelope types.SuccessEnvelope
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	data := envelope.Data.(map[string]any)
	if data["count"] != float64(7) {
		t.Fatalf("unexpected count %v", data["count"])
	}
	if data["emailId"] != "<abc@smtp>" {
		t.Fatalf("unexpected email id %v", data["emailId"])
	}
	if data["markedAsSent"] != float64(7) {
		t.Fatalf("unexpected marked count %v", data["markedAsSent"])
	}
}

func TestTriggerExportMapsDependencyFailure(t *testing.T) {
	svc := &stubExportService{err: pkgerrors.New(pkgerrors.CodeDependency, "send registration report")}
	handler := TriggerExport(svc, controllerLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/registrations", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}
