package panels

import "github.com/grafana/grafana-foundation-sdk/go/timeseries"

// OrdersRate returns a timeseries panel showing orders created per minute.
func OrdersRate() *timeseries.PanelBuilder {
	return series("Orders / min", "Rate of orders created per minute", ThirdWidth).
		WithTarget(PromQuery(`udam:orders_created:rate5m * 60`, "orders/min", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// TransitionsByAction returns a timeseries panel showing order state
// transitions per minute split by the action that caused them.
func TransitionsByAction() *timeseries.PanelBuilder {
	return series("Transitions / min", "Order state transitions per minute by action", ThirdWidth).
		WithTarget(PromQuery(`udam:order_transitions:rate5m * 60`, "{{action}}", "A")).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// VersionConflicts returns a timeseries panel showing optimistic version
// conflicts retried on concurrent order updates.
func VersionConflicts() *timeseries.PanelBuilder {
	return series("Version Conflicts / min", "Concurrent order updates retried after a version conflict", ThirdWidth).
		WithTarget(PromQuery(`sum(rate(`+Sel("udam_order_version_conflicts_total")+`[5m])) * 60`, "conflicts/min", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds())
}

// UnitsFlow returns a timeseries panel showing inventory units reserved,
// restored and sold per minute.
func UnitsFlow() *timeseries.PanelBuilder {
	b := series("Inventory Units / min", "Units reserved by orders, restored to listings, and sold", TSWidth)
	for i, kind := range []string{"reserved", "restored", "sold"} {
		expr := `sum(rate(` + Sel("udam_inventory_units_"+kind+"_total") + `[5m])) * 60`
		b = b.WithTarget(PromQuery(expr, kind, string(rune('A'+i))))
	}
	return b.
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// ReservationFailures returns a timeseries panel showing orders rejected for
// insufficient inventory.
func ReservationFailures() *timeseries.PanelBuilder {
	return series("Reservation Failures / min", "Orders rejected for insufficient inventory", TSWidth).
		WithTarget(PromQuery(`udam:reservation_failures:rate5m * 60`, "failures/min", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds())
}
