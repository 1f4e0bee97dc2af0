package registrations

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shembeark/registrations-backend/pkg/db/models"
	pkgerrors "github.com/shembeark/registrations-backend/pkg/errors"
	"github.com/shembeark/registrations-backend/pkg/logger"
	"github.com/shembeark/registrations-backend/pkg/pagination"
)

type fakeRepository struct {
	createFn func(ctx context.Context, reg *models.Registration) error
	searchFn func(ctx context.Context, params SearchParams) ([]models.Registration, int64, error)
}

func (f *fakeRepository) Create(ctx context.Context, reg *models.Registration) error {
	if f.createFn != nil {
		return f.createFn(ctx, reg)
	}
	return nil
}

func (f *fakeRepository) ExistsByCellphone(ctx context.Context, cellphone string) (bool, error) {
	return false, nil
}

func (f *fakeRepository) Search(ctx context.Context, params SearchParams) ([]models.Registration, int64, error) {
	if f.searchFn != nil {
		return f.searchFn(ctx, params)
	}
	return nil, 0, nil
}

func (f *fakeRepository) FindUnsentBatch(ctx context.Context, offset, limit int) ([]models.Registration, error) {
	return nil, nil
}

func (f *fakeRepository) MarkSent(ctx context.Context, tx *gorm.DB, ids []uuid.UUID, now time.Time) (int64, error) {
	return 0, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func newServiceWithRepo(repo Repository) Service {
	svc, _ := NewService(repo, testLogger())
	return svc
}

func validInput() RegisterInput {
	return RegisterInput{
		FirstName: "Thandi",
		Surname:   "Mkhize",
		Cellphone: "712345678",
		Email:     "Thandi@Example.com",
		Address:   "12 Main Road",
		Suburb:    "Inanda",
		Province:  "KwaZulu-Natal",
		Temple:    "Ebuhleni",
	}
}

func TestService_Register(t *testing.T) {
	var captured *models.Registration
	repo := &fakeRepository{
		createFn: func(ctx context.Context, reg *models.Registration) error {
			captured = reg
			return nil
		},
	}

	svc := newServiceWithRepo(repo)
	summary, err := svc.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}
	if captured == nil {
		t.Fatal("expected repository create call")
	}
	if captured.Cellphone != "712345678" {
		t.Fatalf("unexpected cellphone %q", captured.Cellphone)
	}
	if captured.Email == nil || *captured.Email != "thandi@example.com" {
		t.Fatalf("expected lowercased email, got %v", captured.Email)
	}
	if !captured.IsActive || captured.EmailSent {
		t.Fatalf("unexpected flags: active=%v sent=%v", captured.IsActive, captured.EmailSent)
	}
	if summary.ID != captured.ID {
		t.Fatalf("summary id %s does not match model id %s", summary.ID, captured.ID)
	}
	if summary.Cellphone != "712345678" {
		t.Fatalf("unexpected summary cellphone %q", summary.Cellphone)
	}
}

func TestService_RegisterNormalizesCellphoneWhitespace(t *testing.T) {
	var captured *models.Registration
	repo := &fakeRepository{
		createFn: func(ctx context.Context, reg *models.Registration) error {
			captured = reg
			return nil
		},
	}

	input := validInput()
	input.Cellphone = " 71 234 5678 "
	input.Email = ""

	svc := newServiceWithRepo(repo)
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}
	if captured.Cellphone != "712345678" {
		t.Fatalf("expected stripped cellphone, got %q", captured.Cellphone)
	}
	if captured.Email != nil {
		t.Fatalf("expected nil email, got %v", *captured.Email)
	}
}

func TestService_RegisterCountsCharactersNotBytes(t *testing.T) {
	repo := &fakeRepository{}
	svc := newServiceWithRepo(repo)

	// 50 two-byte runes: at the character limit but 100 bytes.
	input := validInput()
	input.FirstName = strings.Repeat("ë", 50)
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("expected 50-character name to pass, got %v", err)
	}

	input.FirstName = strings.Repeat("ë", 51)
	_, err := svc.Register(context.Background(), input)
	if err == nil {
		t.Fatal("expected 51-character name to fail")
	}
	fields, ok := pkgerrors.As(err).Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field map details, got %T", pkgerrors.As(err).Details())
	}
	if _, found := fields["firstName"]; !found {
		t.Fatal("expected firstName length failure")
	}
}

func TestService_RegisterCollectsAllValidationFailures(t *testing.T) {
	created := false
	repo := &fakeRepository{
		createFn: func(ctx context.Context, reg *models.Registration) error {
			created = true
			return nil
		},
	}

	svc := newServiceWithRepo(repo)
	_, err := svc.Register(context.Background(), RegisterInput{
		Cellphone: "0712345678",
		Email:     "not-an-email",
		Province:  "Atlantis",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if created {
		t.Fatal("invalid input must not reach the repository")
	}

	appErr := pkgerrors.As(err)
	if appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %s", appErr.Code())
	}
	fields, ok := appErr.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field map details, got %T", appErr.Details())
	}
	for _, key := range []string{"firstName", "surname", "cellphone", "email", "address", "suburb", "province", "temple"} {
		if _, present := fields[key]; !present {
			t.Fatalf("expected failure for field %q, got %v", key, fields)
		}
	}
	if !strings.Contains(fields["province"], "Gauteng") {
		t.Fatalf("expected province message to list options, got %q", fields["province"])
	}
}

func TestService_RegisterDuplicateCellphone(t *testing.T) {
	repo := &fakeRepository{
		createFn: func(ctx context.Context, reg *models.Registration) error {
			return errors.New(`ERROR: duplicate key value violates unique constraint "ux_registrations_cellphone" (SQLSTATE 23505)`)
		},
	}

	svc := newServiceWithRepo(repo)
	_, err := svc.Register(context.Background(), validInput())
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if code := pkgerrors.As(err).Code(); code != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict code, got %s", code)
	}
}

func TestService_RegisterStoreFailure(t *testing.T) {
	repo := &fakeRepository{
		createFn: func(ctx context.Context, reg *models.Registration) error {
			return errors.New("connection refused")
		},
	}

	svc := newServiceWithRepo(repo)
	_, err := svc.Register(context.Background(), validInput())
	if err == nil {
		t.Fatal("expected store error")
	}
	if code := pkgerrors.As(err).Code(); code != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency code, got %s", code)
	}
}

func TestService_Search(t *testing.T) {
	rows := []models.Registration{
		{ID: uuid.New(), FirstName: "Thandi", Cellphone: "712345678", RegistrationDate: time.Now()},
		{ID: uuid.New(), FirstName: "Sipho", Cellphone: "823456789", RegistrationDate: time.Now().Add(-time.Hour)},
	}
	repo := &fakeRepository{
		searchFn: func(ctx context.Context, params SearchParams) ([]models.Registration, int64, error) {
			if params.Filter != "thandi" {
				t.Fatalf("unexpected filter %q", params.Filter)
			}
			if params.Page.Page != 1 || params.Page.PageSize != 2 {
				t.Fatalf("unexpected page params %+v", params.Page)
			}
			if params.UnsentOnly {
				t.Fatal("unsentOnly should default to false")
			}
			return rows, 5, nil
		},
	}

	svc := newServiceWithRepo(repo)
	page, err := svc.Search(context.Background(), Query{Filter: "thandi", Page: pagination.Params{Page: 1, PageSize: 2}})
	if err != nil {
		t.Fatalf("unexpected search error: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(page.Items))
	}
	if page.Meta.Total != 5 || page.Meta.TotalPages != 3 {
		t.Fatalf("unexpected meta %+v", page.Meta)
	}
	if !page.Meta.HasNext || page.Meta.HasPrev {
		t.Fatalf("unexpected page flags %+v", page.Meta)
	}
}

func TestService_SearchClampsPageParams(t *testing.T) {
	repo := &fakeRepository{
		searchFn: func(ctx context.Context, params SearchParams) ([]models.Registration, int64, error) {
			if params.Page.Page != 1 {
				t.Fatalf("expected page clamped to 1, got %d", params.Page.Page)
			}
			if params.Page.PageSize != pagination.DefaultPageSize {
				t.Fatalf("expected default page size, got %d", params.Page.PageSize)
			}
			return nil, 0, nil
		},
	}

	svc := newServiceWithRepo(repo)
	page, err := svc.Search(context.Background(), Query{Page: pagination.Params{Page: -3, PageSize: 0}})
	if err != nil {
		t.Fatalf("unexpected search error: %v", err)
	}
	if len(page.Items) != 0 {
		t.Fatalf("expected empty result, got %d items", len(page.Items))
	}
	if page.Meta.Total != 0 || page.Meta.TotalPages != 0 {
		t.Fatalf("unexpected meta %+v", page.Meta)
	}
}
