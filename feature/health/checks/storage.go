package checks

import (
	"context"

	"asset-sorter/core/storage"
)

// BucketReport is the result of a storage check.
type BucketReport struct {
	Bucket string `json:"bucket"`
	Status string `json:"status"` // "ok", "missing", "error", "disabled"
	Error  string `json:"error,omitempty"`
}

// CheckBucket verifies the snapshot bucket exists. A nil client reports "disabled".
func CheckBucket(ctx context.Context, client storage.Client, bucket string) BucketReport {
	report := BucketReport{Bucket: bucket}
	if client == nil {
		report.Status = "disabled"
		return report
	}

	exists, err := client.BucketExists(ctx, bucket)
	switch {
	case err != nil:
		report.Status = "error"
		report.Error = err.Error()
	case !exists:
		report.Status = "missing"
	default:
		report.Status = "ok"
	}
	return report
}
