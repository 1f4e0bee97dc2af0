package registrations

import (
	"context"
	"time"

	"github.com/shembeark/registrations-backend/pkg/db"
	pkgerrors "github.com/shembeark/registrations-backend/pkg/errors"
	"github.com/shembeark/registrations-backend/pkg/logger"
	"github.com/shembeark/registrations-backend/pkg/pagination"
)

const cellphoneUniqueConstraint = "ux_registrations_cellphone"

// Service handles registration intake and admin search.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (Summary, error)
	Search(ctx context.Context, query Query) (Page, error)
}

// Query carries the admin listing options.
type Query struct {
	Filter     string
	UnsentOnly bool
	Page       pagination.Params
}

// Page is one page of search results with its pagination metadata.
type Page struct {
	Items []Summary       `json:"items"`
	Meta  pagination.Meta `json:"pagination"`
}

type service struct {
	repo Repository
	log  *logger.Logger
	now  func() time.Time
}

// NewService wires a registration service.
func NewService(repo Repository, log *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "registrations: repository is required")
	}
	if log == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "registrations: logger is required")
	}
	return &service{repo: repo, log: log, now: time.Now}, nil
}

// Register validates and persists a new registration. A duplicate cellphone
// surfaces as a conflict; the unique index is the authoritative gate, so two
// racing submissions cannot both win.
func (s *service) Register(ctx context.Context, input RegisterInput) (Summary, error) {
	norm := input.normalized()
	if err := validateInput(norm); err != nil {
		return Summary{}, err
	}

	reg := norm.toModel(s.now().UTC())
	if err := s.repo.Create(ctx, reg); err != nil {
		if db.IsUniqueViolation(err, cellphoneUniqueConstraint) {
			return Summary{}, pkgerrors.New(pkgerrors.CodeConflict, "cellphone already registered")
		}
		return Summary{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create registration")
	}

	ctx = s.log.WithFields(ctx, map[string]any{
		"registration_id": reg.ID.String(),
		"province":        string(reg.Province),
	})
	s.log.Info(ctx, "registration created")

	return *summaryFromModel(reg), nil
}

// Search returns a filtered, paginated listing sorted newest first.
func (s *service) Search(ctx context.Context, query Query) (Page, error) {
	params := SearchParams{
		Filter:     query.Filter,
		UnsentOnly: query.UnsentOnly,
		Page:       pagination.Normalize(query.Page),
	}
	rows, total, err := s.repo.Search(ctx, params)
	if err != nil {
		return Page{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "search registrations")
	}

	items := make([]Summary, 0, len(rows))
	for i := range rows {
		items = append(items, *summaryFromModel(&rows[i]))
	}
	return Page{
		Items: items,
		Meta:  pagination.NewMeta(params.Page, total),
	}, nil
}
