// Package database handles database connections.
//
// It provides a wrapper around GORM to configure MySQL or SQLite
// connections from the application's configuration. The database backs the
// optional activity ledger of the objects feature; UCS runs without it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
