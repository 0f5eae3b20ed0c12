package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return newRule("udam-recording-rules", "udam-recording", []Rule{
		{
			Record: "udam:http_requests:rate5m",
			Expr:   `sum(rate(udam_http_requests_total[5m]))`,
		},
		{
			Record: "udam:http_errors:rate5m",
			Expr:   `sum(rate(udam_http_requests_total{status=~"5.."}[5m]))`,
		},
		{
			Record: "udam:orders_created:rate5m",
			Expr:   `sum(rate(udam_orders_created_total[5m]))`,
		},
		{
			Record: "udam:order_transitions:rate5m",
			Expr:   `sum by (action) (rate(udam_order_transitions_total[5m]))`,
		},
		{
			Record: "udam:reservation_failures:rate5m",
			Expr:   `sum(rate(udam_inventory_reservation_failures_total[5m]))`,
		},
		{
			Record: "udam:escrow_settlements:rate5m",
			Expr:   `sum by (status) (rate(udam_escrow_settlements_total[5m]))`,
		},
		{
			Record: "udam:window_sweep_duration:p95_5m",
			Expr:   `histogram_quantile(0.95, sum(rate(udam_window_sweep_duration_seconds_bucket[5m])) by (le))`,
		},
		{
			Record: "udam:notification_duration:p95_5m",
			Expr:   `histogram_quantile(0.95, sum(rate(udam_notification_duration_seconds_bucket[5m])) by (le))`,
		},
	})
}
