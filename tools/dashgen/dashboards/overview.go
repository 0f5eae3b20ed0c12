// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/CyberSolo/UDAM/tools/dashgen/panels"
)

// UID is the stable Grafana identifier of the overview dashboard.
const UID = "udam-overview"

// BuildOverview constructs the UDAM Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("UDAM Overview").
		Uid(UID).
		Tags([]string{"udam", "marketplace"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthyStat()).
		WithPanel(panels.ReadyStat()).
		WithPanel(panels.DisputesOpenedStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.RateLimited()))

	b.WithRow(dashboard.NewRowBuilder("Orders").
		WithPanel(panels.OrdersRate()).
		WithPanel(panels.TransitionsByAction()).
		WithPanel(panels.VersionConflicts()))

	b.WithRow(dashboard.NewRowBuilder("Inventory").
		WithPanel(panels.UnitsFlow()).
		WithPanel(panels.ReservationFailures()))

	b.WithRow(dashboard.NewRowBuilder("Escrow").
		WithPanel(panels.TokensMinted()).
		WithPanel(panels.SettlementsByStatus()).
		WithPanel(panels.SettledAmount()))

	// Disputes and the window sweep share a row; the sweep settles elapsed windows.
	b.WithRow(dashboard.NewRowBuilder("Disputes").
		WithPanel(panels.DisputesRate()).
		WithPanel(panels.DecisionsByParty()).
		WithPanel(panels.WindowExpirations()).
		WithPanel(panels.SweepDuration()).
		WithPanel(panels.NextSweep()))

	b.WithRow(dashboard.NewRowBuilder("Reputation & Notifications").
		WithPanel(panels.ReviewScoreDistribution()).
		WithPanel(panels.NotificationLatency()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
