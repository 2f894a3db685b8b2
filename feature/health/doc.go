// Package health reports whether the sorter's dependencies are usable.
//
// # Checks
//
//   - Host: one Ping against the DAM. Pinging through the sorter service
//     also flips its online flag, so a health check brings a degraded
//     instance back as soon as the host answers.
//   - Storage: the snapshot bucket exists. Reported "disabled" without storage.
//   - Database: the history table has every column of history.Event.
//     Reported "disabled" without a database.
//
// # HTTP Endpoints
//
//   - GET /health          : all checks; 503 while the host is offline.
//   - GET /health/host     : host only.
//   - GET /health/storage  : bucket only.
//   - GET /health/database : history schema only.
package health
