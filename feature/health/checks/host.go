package checks

import (
	"context"
	"time"
)

// Pinger checks reachability of the host.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HostReport is the result of a host reachability check.
type HostReport struct {
	Status    string `json:"status"` // "online", "offline"
	LatencyMs int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// CheckHost pings the host once.
func CheckHost(ctx context.Context, p Pinger) HostReport {
	start := time.Now()
	err := p.Ping(ctx)
	report := HostReport{Status: "online", LatencyMs: time.Since(start).Milliseconds()}
	if err != nil {
		report.Status = "offline"
		report.Error = err.Error()
	}
	return report
}
