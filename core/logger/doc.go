// Package logger builds the zap logger used across the sorter.
//
// Level "debug" selects zap's development config, anything else the
// production config. Format "console" switches to colored console output,
// which the CLI commands use for their error reporting.
//
// # RayIDs
//
// WithRayID copies the request ID set by the rayid middleware onto a logger,
// so every line written while serving a request can be correlated, including
// the reconcile and history entries it triggers. Requests is the access log
// middleware; it runs after rayid and logs status and latency per request.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "json"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Move failed", zap.Error(err))
package logger
