package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// TokensMinted returns a timeseries panel showing escrow tokens minted per
// minute.
func TokensMinted() *timeseries.PanelBuilder {
	return series("Tokens Minted / min", "Escrow tokens minted when sellers accept orders", ThirdWidth).
		WithTarget(PromQuery(`sum(rate(`+Sel("udam_escrow_tokens_minted_total")+`[5m])) * 60`, "minted/min", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// SettlementsByStatus returns a timeseries panel showing escrow settlements
// per minute split by terminal token status.
func SettlementsByStatus() *timeseries.PanelBuilder {
	return series("Settlements / min", "Escrow tokens released or refunded per minute", ThirdWidth).
		WithTarget(PromQuery(`udam:escrow_settlements:rate5m * 60`, "{{status}}", "A")).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// SettledAmount returns a stacked timeseries panel showing settled escrow
// value in minor units per hour.
func SettledAmount() *timeseries.PanelBuilder {
	return series("Settled Amount / h", "Escrow value settled per hour in minor units", ThirdWidth).
		WithTarget(PromQuery(
			`sum by (status) (increase(`+Sel("udam_escrow_settled_amount_total")+`[1h]))`,
			"{{status}}", "A",
		)).
		Stacking(common.NewStackingConfigBuilder().Mode(common.StackingModeNormal)).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
