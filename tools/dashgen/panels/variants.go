package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// VariantChanges stacks new, updated and pruned variants per hour as bars.
func VariantChanges() *timeseries.PanelBuilder {
	hourly := func(metric string) string {
		return `sum(rate(` + ofJob(metric) + `[1h])) * 3600`
	}
	return series("Variant Changes / hour", "Variants first seen, changed, or pruned per hour", 16).
		WithTarget(query(hourly("wcm_variants_new_total"), "new", "A")).
		WithTarget(query(hourly("wcm_variants_updated_total"), "updated", "B")).
		WithTarget(query(hourly("wcm_variants_pruned_total"), "pruned", "C")).
		DrawStyle(common.GraphDrawStyleBars).
		Legend(common.NewVizLegendOptionsBuilder().
			DisplayMode(common.LegendDisplayModeTable).
			Placement(common.LegendPlacementBottom).
			Calcs([]string{"sum", "max"}))
}

// MalformedPrices counts variants skipped because their price text could not
// be normalized. A jump usually means the storefront changed its markup.
func MalformedPrices() *stat.PanelBuilder {
	return single("Malformed Prices (24h)", "Variants whose storefront price could not be normalized",
		increase24h("wcm_malformed_prices_total"), ThirdWidth, TSHeight).
		Thresholds(warnAt(1, 10)).
		GraphMode(common.BigValueGraphModeArea)
}
