package health

import (
	"context"

	"asset-sorter/core/storage"
	"asset-sorter/feature/health/checks"
	"asset-sorter/feature/history"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Overall statuses.
const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
)

// DatabaseReport wraps the history schema check.
type DatabaseReport struct {
	Status string               `json:"status"` // "ok", "error", "disabled"
	Schema *checks.SchemaReport `json:"schema,omitempty"`
	Error  string               `json:"error,omitempty"`
}

// Report combines every check.
type Report struct {
	Status   string              `json:"status"`
	Host     checks.HostReport   `json:"host"`
	Storage  checks.BucketReport `json:"storage"`
	Database DatabaseReport      `json:"database"`
}

// Service runs health checks.
type Service struct {
	host   checks.Pinger
	client storage.Client
	bucket string
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new health service. client and db may be nil.
func NewService(host checks.Pinger, client storage.Client, bucket string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		host:   host,
		client: client,
		bucket: bucket,
		db:     db,
		logger: logger,
	}
}

// CheckHost pings the host.
func (s *Service) CheckHost(ctx context.Context) checks.HostReport {
	return checks.CheckHost(ctx, s.host)
}

// CheckStorage verifies the snapshot bucket.
func (s *Service) CheckStorage(ctx context.Context) checks.BucketReport {
	return checks.CheckBucket(ctx, s.client, s.bucket)
}

// CheckDatabase verifies the history table schema.
func (s *Service) CheckDatabase() DatabaseReport {
	if s.db == nil {
		return DatabaseReport{Status: "disabled"}
	}
	schema, err := checks.CheckSchema(s.db, history.Event{})
	if err != nil {
		return DatabaseReport{Status: "error", Error: err.Error()}
	}
	return DatabaseReport{Status: schema.Status, Schema: schema}
}

// Run performs every check. Disabled components do not degrade the result.
func (s *Service) Run(ctx context.Context) Report {
	report := Report{
		Status:   StatusOK,
		Host:     s.CheckHost(ctx),
		Storage:  s.CheckStorage(ctx),
		Database: s.CheckDatabase(),
	}

	if report.Host.Status != "online" {
		report.Status = StatusDegraded
	}
	if st := report.Storage.Status; st != "ok" && st != "disabled" {
		report.Status = StatusDegraded
	}
	if st := report.Database.Status; st != "ok" && st != "disabled" {
		report.Status = StatusDegraded
	}
	return report
}
