package objects

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	ledger  *Ledger
	logger  *zap.Logger
}

// NewFeature creates a new Objects feature. db may be nil, which disables
// the activity ledger.
func NewFeature(store Store, logger *zap.Logger, db *gorm.DB) *Feature {
	var ledger *Ledger
	if db != nil {
		ledger = NewLedger(db)
	}
	svc := NewService(store, ledger, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h, ledger: ledger, logger: logger}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "objects"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load migrates the ledger, if any, and registers the feature's routes.
// A ledger that cannot be migrated is disabled; the routes still load.
func (f *Feature) Load(app fiber.Router) error {
	if f.ledger != nil {
		if err := f.ledger.Migrate(); err != nil {
			f.logger.Warn("Activity ledger disabled", zap.Error(err))
			f.ledger = nil
			f.service.ledger = nil
		}
	}
	f.handler.RegisterRoutes(app)
	return nil
}
