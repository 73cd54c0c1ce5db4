package dashboard

import "context"

// DashboardService computes read-only dashboard views from the raw entity
// lists; it never mutates data.
type DashboardService interface {
	// GetStats returns the full dashboard: counters, recent activity,
	// who is on leave today, and the 14-day attendance trend
	GetStats(ctx context.Context) (*StatsResponse, error)

	// GetSummary returns just the headline counters
	GetSummary(ctx context.Context) (*SummaryResponse, error)
}
