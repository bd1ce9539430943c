package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

func HealthzStat() *stat.PanelBuilder {
	return upDown("Healthz", "Health check status (1 = ok, 0 = failing)", `wcm_healthz_up`)
}

func ReadyzStat() *stat.PanelBuilder {
	return upDown("Readyz", "Readiness check status (1 = ready, 0 = store unreachable)", `wcm_readyz_up`)
}

// MonitorsEnabledStat shows how many monitors the last cycle polled. Zero
// means nothing is being watched.
func MonitorsEnabledStat() *stat.PanelBuilder {
	return single("Enabled Monitors", "Monitors polled by the last check cycle",
		`max(`+ofJob("wcm_monitors_enabled")+`)`, StatWidth, StatHeight).
		Thresholds(steps("red", 1, "green")).
		ColorMode(common.BigValueColorModeValue).
		GraphMode(common.BigValueGraphModeArea)
}

// LastCycleStat turns yellow after three missed cycles at the default 5m
// interval and red after six.
func LastCycleStat() *stat.PanelBuilder {
	return single("Last Cycle", "Time since the last completed check cycle",
		`time() - max(`+ofJob("wcm_last_cycle_timestamp_seconds")+`)`, StatWidth, StatHeight).
		Unit("s").
		Thresholds(warnAt(900, 1800))
}
