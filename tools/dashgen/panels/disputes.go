package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// DisputesRate returns a timeseries panel showing disputes opened per hour.
func DisputesRate() *timeseries.PanelBuilder {
	return series("Disputes / h", "Disputes opened by buyers per hour", ThirdWidth).
		WithTarget(PromQuery(`sum(increase(`+Sel("udam_disputes_opened_total")+`[1h]))`, "disputes/h", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// DecisionsByParty returns a timeseries panel showing dispute resolutions
// per hour by favored party and resolution source.
func DecisionsByParty() *timeseries.PanelBuilder {
	return series("Dispute Decisions / h", "Resolved disputes by favored party and source", ThirdWidth).
		WithTarget(PromQuery(
			`sum by (decision, source) (increase(`+Sel("udam_dispute_decisions_total")+`[1h]))`,
			"{{decision}} ({{source}})", "A",
		)).
		Legend(TableLegend("sum")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// WindowExpirations returns a timeseries panel showing elapsed dispute and
// counter windows applied per hour.
func WindowExpirations() *timeseries.PanelBuilder {
	return series("Window Expirations / h", "Elapsed dispute and counter windows applied", ThirdWidth).
		WithTarget(PromQuery(
			`sum by (window) (increase(`+Sel("udam_window_expirations_total")+`[1h]))`,
			"{{window}}", "A",
		)).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// SweepDuration returns a timeseries panel showing the p95 window sweep
// duration.
func SweepDuration() *timeseries.PanelBuilder {
	return series("Sweep Duration (p95)", "95th percentile window expiry sweep duration", TSWidth).
		WithTarget(PromQuery(`udam:window_sweep_duration:p95_5m`, "p95", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemePaletteClassic())
}

// NextSweep returns a stat panel showing time until the next scheduled
// window sweep.
func NextSweep() *stat.PanelBuilder {
	return single("Next Sweep", "Time until the next scheduled window sweep").
		WithTarget(PromQuery(Sel("udam_scheduler_next_sweep_timestamp")+` - time()`, "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground)
}
