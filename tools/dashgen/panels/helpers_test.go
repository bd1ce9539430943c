package panels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		by   string
		want string
	}{
		{
			name: "no grouping",
			want: `histogram_quantile(0.95, sum(rate(m_bucket{job="wc-monitor"}[5m])) by (le))`,
		},
		{
			name: "grouped by label",
			by:   "page",
			want: `histogram_quantile(0.95, sum(rate(m_bucket{job="wc-monitor"}[5m])) by (le, page))`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, quantile("0.95", "m", tt.by))
		})
	}
}

func TestSteps(t *testing.T) {
	t.Parallel()

	cfg, err := steps("green", 1, "yellow", 5.5, "red").Build()
	require.NoError(t, err)
	require.Len(t, cfg.Steps, 3)

	assert.Equal(t, "green", cfg.Steps[0].Color)
	assert.Nil(t, cfg.Steps[0].Value)
	require.NotNil(t, cfg.Steps[1].Value)
	assert.InDelta(t, 1.0, *cfg.Steps[1].Value, 0)
	require.NotNil(t, cfg.Steps[2].Value)
	assert.InDelta(t, 5.5, *cfg.Steps[2].Value, 0)
	assert.Equal(t, "red", cfg.Steps[2].Color)
}

func TestIncrease24h(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `sum(increase(x_total{job="wc-monitor"}[24h]))`, increase24h("x_total"))
}
