package panels

import "github.com/grafana/grafana-foundation-sdk/go/timeseries"

// RequestRate returns a timeseries panel showing the HTTP request rate.
func RequestRate() *timeseries.PanelBuilder {
	return series("Request Rate", "HTTP requests per second", TSWidth).
		WithTarget(PromQuery(`udam:http_requests:rate5m`, "req/s", "A")).
		Unit("reqps").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// LatencyPercentiles returns a timeseries panel showing p50, p95, and p99
// HTTP request latencies.
func LatencyPercentiles() *timeseries.PanelBuilder {
	b := series("Latency Percentiles", "HTTP request duration percentiles", TSWidth)
	for i, q := range []string{"0.50", "0.95", "0.99"} {
		expr := `histogram_quantile(` + q + `, sum(rate(` +
			Sel("udam_http_request_duration_seconds_bucket") + `[5m])) by (le))`
		b = b.WithTarget(PromQuery(expr, "p"+q[2:], string(rune('A'+i))))
	}
	return b.
		Unit("s").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// ErrorRate returns a timeseries panel showing the HTTP 5xx error rate
// as a percentage.
func ErrorRate() *timeseries.PanelBuilder {
	return series("Error Rate %", "HTTP 5xx error rate as percentage of total requests", TSWidth).
		WithTarget(PromQuery(
			`udam:http_errors:rate5m / udam:http_requests:rate5m * 100`,
			"error %", "A",
		)).
		Unit("percent").
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds())
}

// RateLimited returns a timeseries panel showing requests rejected by the
// per-client rate limiter.
func RateLimited() *timeseries.PanelBuilder {
	return series("Rate Limited", "Requests rejected with 429 per second", TSWidth).
		WithTarget(PromQuery(`sum(rate(`+Sel("udam_http_rate_limited_total")+`[5m]))`, "429/s", "A")).
		Unit("reqps").
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds())
}
