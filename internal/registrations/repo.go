package registrations

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shembeark/registrations-backend/pkg/db/models"
	"github.com/shembeark/registrations-backend/pkg/pagination"
)

// Repository exposes persistence helpers for registrations.
type Repository interface {
	Create(ctx context.Context, reg *models.Registration) error
	ExistsByCellphone(ctx context.Context, cellphone string) (bool, error)
	Search(ctx context.Context, params SearchParams) ([]models.Registration, int64, error)
	FindUnsentBatch(ctx context.Context, offset, limit int) ([]models.Registration, error)
	MarkSent(ctx context.Context, tx *gorm.DB, ids []uuid.UUID, now time.Time) (int64, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a registrations repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

// SearchParams configures filtering and pagination for admin listings.
type SearchParams struct {
	Filter     string
	Page       pagination.Params
	UnsentOnly bool
}

// searchFields are the columns the free-text filter matches against.
var searchFields = []string{
	"first_name", "surname", "cellphone", "email",
	"address", "suburb", "province", "temple",
}

func (r *repositoryImpl) Create(ctx context.Context, reg *models.Registration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *repositoryImpl) ExistsByCellphone(ctx context.Context, cellphone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Registration{}).
		Where("cellphone = ?", cellphone).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Search returns one page of registrations plus the total row count for the
// filter. Sort is registration_date DESC with id as a deterministic tie-break.
func (r *repositoryImpl) Search(ctx context.Context, params SearchParams) ([]models.Registration, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Registration{})
	query = applyFilter(query, params)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := pagination.Normalize(params.Page)
	var rows []models.Registration
	err := query.
		Order("registration_date DESC").
		Order("id DESC").
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func applyFilter(query *gorm.DB, params SearchParams) *gorm.DB {
	if filter := strings.TrimSpace(params.Filter); filter != "" {
		pattern := "%" + escapeLike(strings.ToLower(filter)) + "%"
		var clauses []string
		args := make([]any, 0, len(searchFields))
		for _, field := range searchFields {
			clauses = append(clauses, "LOWER("+field+") LIKE ? ESCAPE '\\'")
			args = append(args, pattern)
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}
	if params.UnsentOnly {
		query = query.Where("email_sent = ? AND is_active = ?", false, true)
	}
	return query
}

// escapeLike neutralizes LIKE metacharacters so user input matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// FindUnsentBatch returns one bounded batch of unsent active registrations,
// oldest first. Callers accumulate batches until a short batch signals the end.
func (r *repositoryImpl) FindUnsentBatch(ctx context.Context, offset, limit int) ([]models.Registration, error) {
	var rows []models.Registration
	err := r.db.WithContext(ctx).
		Where("email_sent = ? AND is_active = ?", false, true).
		Order("registration_date ASC").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MarkSent flips email_sent on exactly the given ids. Runs on the supplied
// transaction when present so the export cycle mutates all-or-nothing.
func (r *repositoryImpl) MarkSent(ctx context.Context, tx *gorm.DB, ids []uuid.UUID, now time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	conn := r.db
	if tx != nil {
		conn = tx
	}
	result := conn.WithContext(ctx).
		Model(&models.Registration{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"email_sent": true,
			"sent_at":    now,
			"updated_at": now,
		})
	return result.RowsAffected, result.Error
}
