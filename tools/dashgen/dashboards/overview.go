// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/joshlee247/woocommerce-discord-monitor/tools/dashgen/panels"
)

// BuildOverview constructs the WC Monitor Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("WC Monitor Overview").
		Uid("wcm-overview").
		Tags([]string{"wcm", "wc-monitor", "woocommerce"}).
		Refresh("30s").
		Time("now-24h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.MonitorsEnabledStat()).
		WithPanel(panels.LastCycleStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.PanicsStat()))

	b.WithRow(dashboard.NewRowBuilder("Check Cycles").
		WithPanel(panels.CyclesRate()).
		WithPanel(panels.CycleDuration()).
		WithPanel(panels.MonitorChecks()).
		WithPanel(panels.ProductClassifications()).
		WithPanel(panels.ProductFailures()))

	b.WithRow(dashboard.NewRowBuilder("Variants").
		WithPanel(panels.VariantChanges()).
		WithPanel(panels.MalformedPrices()))

	b.WithRow(dashboard.NewRowBuilder("Storefront").
		WithPanel(panels.StorefrontRequests()).
		WithPanel(panels.StorefrontLatency()))

	b.WithRow(dashboard.NewRowBuilder("Notifications").
		WithPanel(panels.NotificationsRate()).
		WithPanel(panels.NotificationLatency()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
