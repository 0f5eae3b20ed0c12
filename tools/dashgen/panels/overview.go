package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// HealthyStat returns a stat panel showing the liveness gauge.
func HealthyStat() *stat.PanelBuilder {
	return single("Healthy", "Liveness (1 = ok, 0 = failing)").
		WithTarget(PromQuery(Sel("udam_healthy"), "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		TextMode(common.BigValueTextModeValue)
}

// ReadyStat returns a stat panel showing whether the datastore is reachable.
func ReadyStat() *stat.PanelBuilder {
	return single("Ready", "Readiness (1 = datastore reachable, 0 = not ready)").
		WithTarget(PromQuery(Sel("udam_ready"), "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		TextMode(common.BigValueTextModeValue)
}

// DisputesOpenedStat returns a stat panel counting disputes opened in the
// last 24 hours.
func DisputesOpenedStat() *stat.PanelBuilder {
	return single("Disputes (24h)", "Disputes opened by buyers in the last 24 hours").
		WithTarget(PromQuery(`sum(increase(`+Sel("udam_disputes_opened_total")+`[24h]))`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(5, 20)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground)
}

// UptimeStat returns a stat panel showing process uptime.
func UptimeStat() *stat.PanelBuilder {
	return single("Uptime", "Time since process start").
		WithTarget(PromQuery(`time() - `+Sel("process_start_time_seconds"), "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds())
}
