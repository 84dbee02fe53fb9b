package objects

import (
	"context"
	"errors"

	"ucs/core/storage"
	"ucs/feature/objects/models"

	"go.uber.org/zap"
)

// ErrLedgerDisabled is returned when activity is requested without a database.
var ErrLedgerDisabled = errors.New("activity ledger is not configured")

// Store is the object storage used by the service.
type Store interface {
	Upload(ctx context.Context, payload []byte, key string) error
	Delete(ctx context.Context, key string) error
	Bucket() string
}

// Service handles object operations.
type Service struct {
	store  Store
	ledger *Ledger
	logger *zap.Logger
}

// NewService creates a new objects service. ledger may be nil.
func NewService(store Store, ledger *Ledger, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		ledger: ledger,
		logger: logger,
	}
}

// Upload stores payload under key and records the attempt.
func (s *Service) Upload(ctx context.Context, payload []byte, key, rayID string) error {
	err := s.store.Upload(ctx, payload, key)

	entry := s.newEntry(models.OperationUpload, key, rayID, err)
	entry.Size = len(payload)
	s.record(ctx, entry)

	return err
}

// Delete removes key and records the attempt.
func (s *Service) Delete(ctx context.Context, key, rayID string) error {
	err := s.store.Delete(ctx, key)
	s.record(ctx, s.newEntry(models.OperationDelete, key, rayID, err))
	return err
}

// Activity returns the most recent ledger entries.
func (s *Service) Activity(ctx context.Context, limit int) ([]models.Activity, error) {
	if s.ledger == nil {
		return nil, ErrLedgerDisabled
	}
	return s.ledger.Recent(ctx, limit)
}

func (s *Service) newEntry(op, key, rayID string, err error) *models.Activity {
	entry := &models.Activity{
		Operation: op,
		Bucket:    s.store.Bucket(),
		Key:       key,
		Outcome:   models.OutcomeSuccess,
		RayID:     rayID,
	}
	if err == nil {
		return entry
	}

	entry.Outcome = models.OutcomeFailure
	if f := failureOf(err); f != nil {
		entry.Kind = f.Kind.String()
		entry.StatusCode = f.StatusCode
	}
	return entry
}

// record writes to the ledger; failures are logged only.
func (s *Service) record(ctx context.Context, entry *models.Activity) {
	if s.ledger == nil {
		return
	}
	if err := s.ledger.Record(ctx, entry); err != nil {
		s.logger.Warn("Failed to record object activity",
			zap.String("op", entry.Operation),
			zap.String("key", entry.Key),
			zap.Error(err),
		)
	}
}

// failureOf extracts the diagnostic context of a storage error.
func failureOf(err error) *storage.Failure {
	var uerr *storage.UploadError
	if errors.As(err, &uerr) {
		return &uerr.Failure
	}
	var derr *storage.DeleteError
	if errors.As(err, &derr) {
		return &derr.Failure
	}
	return nil
}
