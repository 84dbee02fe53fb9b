package cmd

import (
	"fmt"

	"ucs/core/config"
	"ucs/core/database"
	"ucs/core/logger"
	"ucs/core/storage"
	"ucs/feature/objects"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime is what every command needs once configuration is loaded.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	client *storage.Client
	db     *gorm.DB
}

// bootstrap loads configuration, then creates the logger, the storage client
// and the optional database connection.
func bootstrap() (*runtime, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := storage.NewFromConfig(cfg.Storage, logg)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	logg = logg.With(zap.String("bucket", client.Bucket()))

	// The ledger database is only reached when a driver is configured.
	var db *gorm.DB
	if cfg.Database.Enabled() {
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to activity database", zap.String("driver", cfg.Database.Driver))
		}
	}

	return &runtime{cfg: cfg, logger: logg, client: client, db: db}, nil
}

// service returns the objects service, with a migrated ledger when a
// database is available.
func (r *runtime) service() *objects.Service {
	var ledger *objects.Ledger
	if r.db != nil {
		ledger = objects.NewLedger(r.db)
		if err := ledger.Migrate(); err != nil {
			r.logger.Warn("Activity ledger disabled", zap.Error(err))
			ledger = nil
		}
	}
	return objects.NewService(r.client, ledger, r.logger)
}
