// Package panels provides Grafana dashboard panel builders for wc-monitor
// metrics.
package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/cog"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// Job is the Prometheus scrape job name of the monitor.
const Job = "wc-monitor"

// Grid sizes on Grafana's 24 column layout.
const (
	StatWidth  = 6
	StatHeight = 4

	TSWidth    = 12
	TSHeight   = 8
	ThirdWidth = 8
	FullWidth  = 24
)

// series is the shared shape of every timeseries panel: classic palette
// lines with a table legend and a shared tooltip. Callers add targets and
// override what differs.
func series(title, description string, span uint32) *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(promDatasource()).
		Height(TSHeight).
		Span(span).
		FillOpacity(10).
		LineWidth(2).
		DrawStyle(common.GraphDrawStyleLine).
		Legend(common.NewVizLegendOptionsBuilder().
			DisplayMode(common.LegendDisplayModeTable).
			Placement(common.LegendPlacementBottom).
			Calcs([]string{"mean", "max"})).
		Tooltip(common.NewVizTooltipOptionsBuilder().
			Mode(common.TooltipDisplayModeMulti).
			Sort(common.SortOrderDescending)).
		Thresholds(steps("green")).
		ColorScheme(colorMode(dashboard.FieldColorModeIdPaletteClassic))
}

// single is the shared shape of stat panels: one query, threshold coloured
// background, no sparkline.
func single(title, description, expr string, width, height uint32) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(promDatasource()).
		Height(height).
		Span(width).
		WithTarget(query(expr, "", "A")).
		ColorScheme(colorMode(dashboard.FieldColorModeIdThresholds)).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// upDown is a 0/1 probe stat that is red unless the value is 1.
func upDown(title, description, expr string) *stat.PanelBuilder {
	return single(title, description, expr, StatWidth, StatHeight).
		Thresholds(steps("red", 1, "green")).
		TextMode(common.BigValueTextModeValue)
}

func promDatasource() dashboard.DataSourceRef {
	return dashboard.DataSourceRef{
		Type: cog.ToPtr("prometheus"),
		Uid:  cog.ToPtr("${datasource}"),
	}
}

func query(expr, legend, refID string) *prometheus.DataqueryBuilder {
	return prometheus.NewDataqueryBuilder().
		Expr(expr).
		LegendFormat(legend).
		RefId(refID)
}

// steps builds absolute thresholds from a base colour followed by
// value, colour pairs: steps("green", 1, "yellow", 5, "red").
func steps(base string, rest ...any) cog.Builder[dashboard.ThresholdsConfig] {
	list := []dashboard.Threshold{{Color: base}}
	for i := 0; i+1 < len(rest); i += 2 {
		list = append(list, dashboard.Threshold{
			Value: cog.ToPtr(toFloat(rest[i])),
			Color: rest[i+1].(string),
		})
	}
	return dashboard.NewThresholdsConfigBuilder().
		Mode(dashboard.ThresholdsModeAbsolute).
		Steps(list)
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

// warnAt is green below yellow, yellow up to red, red beyond.
func warnAt(yellow, red float64) cog.Builder[dashboard.ThresholdsConfig] {
	return steps("green", yellow, "yellow", red, "red")
}

func colorMode(mode dashboard.FieldColorModeId) cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().Mode(mode)
}

// ofJob scopes a metric selector to the monitor's scrape job.
func ofJob(metric string) string {
	return metric + `{job="` + Job + `"}`
}

// increase24h sums a counter's increase over the past day.
func increase24h(metric string) string {
	return `sum(increase(` + ofJob(metric) + `[24h]))`
}

// quantile returns the q-th quantile of a histogram metric, optionally
// grouped by one extra label.
func quantile(q, metric, by string) string {
	group := "le"
	if by != "" {
		group += ", " + by
	}
	return `histogram_quantile(` + q + `, sum(rate(` + ofJob(metric+"_bucket") + `[5m])) by (` + group + `))`
}
