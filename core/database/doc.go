// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// based on the application's configuration. The sorter uses the database only
// for its reorder history, so the connection is optional: callers log a
// warning and carry on without history when Connect fails.
//
// # Schema Inspection
//
// GetTableColumns lists the live columns of a table with lowercased names and
// types. MySQL is read through SHOW COLUMNS, other dialects through the gorm
// migrator. The health check compares the result with the history model.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("History disabled", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "reorder_events")
package database
