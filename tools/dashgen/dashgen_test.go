package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/joshlee247/woocommerce-discord-monitor/tools/dashgen/dashboards"
	"github.com/joshlee247/woocommerce-discord-monitor/tools/dashgen/rules"
	"github.com/joshlee247/woocommerce-discord-monitor/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	builder := dashboards.BuildOverview()
	dash, err := builder.Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "wcm-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "WC Monitor Overview", *dash.Title)

	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	assert.Len(t, dash.Panels, 6)

	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 20, totalPanels)

	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "wcm-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "wcm-recording", group.Name)
	require.Len(t, group.Rules, 8)

	expectedRecords := []string{
		"wcm:http_requests:rate5m",
		"wcm:http_errors:rate5m",
		"wcm:check_cycles:rate5m",
		"wcm:product_check_failures:rate5m",
		"wcm:storefront_requests:rate5m",
		"wcm:storefront_errors:rate5m",
		"wcm:notification_failures:rate5m",
		"wcm:notification_duration:p95_5m",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.NotEmpty(t, rule.Expr)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings)

	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "wcm-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "wcm-alerts", group.Name)
	require.Len(t, group.Rules, 7)

	expectedAlerts := []string{
		"WcmDown",
		"WcmReadinessDown",
		"WcmHighErrorRate",
		"WcmCyclesStalled",
		"WcmStorefrontErrors",
		"WcmProductCheckFailures",
		"WcmNotificationFailures",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Expr)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
}

func TestValidateRules_Problems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		rule      rules.Rule
		wantError string
		wantWarn  bool
	}{
		{
			name:      "unknown metric",
			rule:      rules.Rule{Alert: "X", Expr: `wcm_nope_total > 0`, Labels: map[string]string{"severity": "warning"}},
			wantError: `unknown metric "wcm_nope_total"`,
		},
		{
			name:      "unparseable expression",
			rule:      rules.Rule{Alert: "X", Expr: `sum(rate(`, Labels: map[string]string{"severity": "warning"}},
			wantError: "parsing",
		},
		{
			name:      "alert without severity",
			rule:      rules.Rule{Alert: "X", Expr: `up == 0`},
			wantError: "no severity label",
		},
		{
			name:     "unlisted recording rule",
			rule:     rules.Rule{Record: "wcm:other:rate5m", Expr: `sum(rate(wcm_http_requests_total[5m]))`},
			wantWarn: true,
		},
		{
			name: "histogram suffix resolves",
			rule: rules.Rule{
				Record: "wcm:http_requests:rate5m",
				Expr:   `sum(rate(wcm_http_request_duration_seconds_count[5m]))`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cr := rules.PrometheusRule{Spec: rules.PrometheusRuleSpec{
				Groups: []rules.RuleGroup{{Name: "g", Rules: []rules.Rule{tt.rule}}},
			}}
			result := validate.Rules(cr, KnownMetrics)

			if tt.wantError == "" {
				assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
			} else {
				require.Len(t, result.Errors, 1)
				assert.Contains(t, result.Errors[0], tt.wantError)
			}
			assert.Equal(t, tt.wantWarn, len(result.Warnings) > 0)
		})
	}
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{OutputDir: dir, DashboardEnabled: true, RulesEnabled: true}
	require.NoError(t, run(cfg, false))

	dashJSON, err := os.ReadFile(filepath.Join(dir, "grafana", "data", "wcm-overview.json"))
	require.NoError(t, err)
	assert.Contains(t, string(dashJSON), `"uid": "wcm-overview"`)

	for _, name := range []string{"wcm-recording-rules.yaml", "wcm-alerts.yaml"} {
		data, err := os.ReadFile(filepath.Join(dir, "prometheus", name))
		require.NoError(t, err)
		assert.True(t, len(data) > len(generatedHeader))
		assert.Equal(t, generatedHeader, string(data[:len(generatedHeader)]))

		var cr rules.PrometheusRule
		require.NoError(t, yaml.Unmarshal(data, &cr))
		assert.Equal(t, "PrometheusRule", cr.Kind)
	}

	plain, err := os.ReadFile(filepath.Join(dir, "prometheus", "rules", "wcm.rules.yaml"))
	require.NoError(t, err)
	assert.NotContains(t, string(plain), "apiVersion")

	var rf rules.RuleFile
	require.NoError(t, yaml.Unmarshal(plain, &rf))
	require.Len(t, rf.Groups, 2)
	assert.Equal(t, "wcm-recording", rf.Groups[0].Name)
	assert.Equal(t, "wcm-alerts", rf.Groups[1].Name)
}

func TestCombine(t *testing.T) {
	t.Parallel()

	assert.Empty(t, rules.Combine().Groups)

	rf := rules.Combine(rules.AlertRules(), rules.RecordingRules())
	require.Len(t, rf.Groups, 2)
	assert.Equal(t, "wcm-alerts", rf.Groups[0].Name)
	assert.Len(t, rf.Groups[1].Rules, 8)
}

func TestRun_ValidateOnlyWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{OutputDir: dir, DashboardEnabled: true, RulesEnabled: true}
	require.NoError(t, run(cfg, true))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
