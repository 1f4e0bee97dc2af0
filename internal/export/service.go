package export

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shembeark/registrations-backend/internal/registrations"
	"github.com/shembeark/registrations-backend/pkg/config"
	"github.com/shembeark/registrations-backend/pkg/db/models"
	pkgerrors "github.com/shembeark/registrations-backend/pkg/errors"
	"github.com/shembeark/registrations-backend/pkg/logger"
	"github.com/shembeark/registrations-backend/pkg/mailer"
)

const defaultBatchSize = 1000

// Transactor runs a function inside a database transaction.
type Transactor interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Result reports one export cycle.
type Result struct {
	Count     int       `json:"count"`
	EmailID   string    `json:"emailId,omitempty"`
	Marked    int64     `json:"markedAsSent"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message,omitempty"`
}

// Service emails unsent registrations as a CSV report.
type Service interface {
	SendUnsent(ctx context.Context) (Result, error)
}

type service struct {
	repo       registrations.Repository
	sender     mailer.Sender
	tx         Transactor
	cfg        config.ExportConfig
	log        *logger.Logger
	now        func() time.Time
	batchSize  int
	markAsSent bool
}

// NewService wires the export service. The recipient address is mandatory;
// without it a cycle could only fail at send time.
func NewService(repo registrations.Repository, sender mailer.Sender, tx Transactor, cfg config.ExportConfig, log *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "export: repository is required")
	}
	if sender == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "export: mail sender is required")
	}
	if tx == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "export: transactor is required")
	}
	if log == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "export: logger is required")
	}
	if cfg.Recipient == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "export: recipient address is required")
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &service{
		repo:       repo,
		sender:     sender,
		tx:         tx,
		cfg:        cfg,
		log:        log,
		now:        time.Now,
		batchSize:  batchSize,
		markAsSent: cfg.MarkAsSent,
	}, nil
}

// SendUnsent selects every unsent active registration, mails the CSV report,
// and marks the selected rows sent in one transaction. Rows stay unsent when
// the send fails, so a retry picks up the same set again.
func (s *service) SendUnsent(ctx context.Context) (Result, error) {
	now := s.now().UTC()

	rows, err := s.collectUnsent(ctx)
	if err != nil {
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "select unsent registrations")
	}
	if len(rows) == 0 {
		return Result{
			Count:     0,
			Timestamp: now,
			Message:   "no unsent registrations found",
		}, nil
	}

	data, err := buildCSV(rows)
	if err != nil {
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build registration csv")
	}

	msg := mailer.Message{
		From:     s.cfg.From,
		To:       s.cfg.Recipient,
		CC:       s.cfg.CCList(),
		Subject:  reportSubject(len(rows), now),
		HTMLBody: reportBody(len(rows), now),
		Attachments: []mailer.Attachment{{
			Filename: attachmentName(now),
			Content:  data,
		}},
	}
	emailID, err := s.sender.Send(ctx, msg)
	if err != nil {
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "send registration report")
	}
	if emailID == "" {
		return Result{}, pkgerrors.New(pkgerrors.CodeDependency, "mail transport returned no delivery identifier")
	}

	ctx = s.log.WithFields(ctx, map[string]any{
		"email_id": emailID,
		"count":    len(rows),
	})
	s.log.Info(ctx, "registration report sent")

	result := Result{
		Count:     len(rows),
		EmailID:   emailID,
		Timestamp: now,
		Message:   "registrations sent successfully",
	}
	if !s.markAsSent {
		result.Message = "registrations sent, records left unmarked"
		return result, nil
	}

	marked, err := s.markSent(ctx, rows, now)
	if err != nil {
		s.log.Error(ctx, "report delivered but records were not marked sent", err)
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark registrations sent")
	}
	result.Marked = marked
	return result, nil
}

// collectUnsent pages through unsent rows oldest first until a short batch
// signals the end of the set.
func (s *service) collectUnsent(ctx context.Context) ([]models.Registration, error) {
	var all []models.Registration
	offset := 0
	for {
		batch, err := s.repo.FindUnsentBatch(ctx, offset, s.batchSize)
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < s.batchSize {
			return all, nil
		}
		offset += s.batchSize
	}
}

func (s *service) markSent(ctx context.Context, rows []models.Registration, now time.Time) (int64, error) {
	ids := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ID)
	}

	var marked int64
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		var txErr error
		marked, txErr = s.repo.MarkSent(ctx, tx, ids, now)
		return txErr
	})
	if err != nil {
		return 0, err
	}
	return marked, nil
}
