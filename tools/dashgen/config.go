package main

import "errors"

// KnownMetrics is the set of metric names exported by the udam server
// plus recording rule names referenced in dashboards and alerts.
// Histogram series suffixes (_bucket, _sum, _count) resolve to the base name.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"udam_http_request_duration_seconds": true,
	"udam_http_requests_total":           true,
	"udam_http_rate_limited_total":       true,

	// Health metrics.
	"udam_healthy": true,
	"udam_ready":   true,

	// Inventory metrics.
	"udam_inventory_units_reserved_total":       true,
	"udam_inventory_units_restored_total":       true,
	"udam_inventory_units_sold_total":           true,
	"udam_inventory_reservation_failures_total": true,

	// Order metrics.
	"udam_orders_created_total":          true,
	"udam_order_transitions_total":       true,
	"udam_order_version_conflicts_total": true,

	// Escrow metrics.
	"udam_escrow_tokens_minted_total":  true,
	"udam_escrow_settlements_total":    true,
	"udam_escrow_settled_amount_total": true,

	// Dispute and window metrics.
	"udam_disputes_opened_total":          true,
	"udam_dispute_decisions_total":        true,
	"udam_window_expirations_total":       true,
	"udam_window_sweep_duration_seconds":  true,
	"udam_scheduler_next_sweep_timestamp": true,

	// Reputation metrics.
	"udam_reviews_submitted_total": true,
	"udam_review_scores":           true,

	// Notification metrics.
	"udam_notification_failures_total":   true,
	"udam_notification_duration_seconds": true,

	// Recording rules.
	"udam:http_requests:rate5m":         true,
	"udam:http_errors:rate5m":           true,
	"udam:orders_created:rate5m":        true,
	"udam:order_transitions:rate5m":     true,
	"udam:reservation_failures:rate5m":  true,
	"udam:escrow_settlements:rate5m":    true,
	"udam:window_sweep_duration:p95_5m": true,
	"udam:notification_duration:p95_5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
