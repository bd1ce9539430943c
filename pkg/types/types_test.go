package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

func TestClassification_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		class domain.Classification
		want  string
	}{
		{domain.Unchanged, "unchanged"},
		{domain.Updated, "update"},
		{domain.New, "new"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.class.String())
		})
	}
}

func TestClassification_Notify(t *testing.T) {
	t.Parallel()

	assert.False(t, domain.Unchanged.Notify())
	assert.True(t, domain.Updated.Notify())
	assert.True(t, domain.New.Notify())
}

func TestMax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b domain.Classification
		want domain.Classification
	}{
		{name: "both unchanged", a: domain.Unchanged, b: domain.Unchanged, want: domain.Unchanged},
		{name: "updated beats unchanged", a: domain.Unchanged, b: domain.Updated, want: domain.Updated},
		{name: "new beats updated", a: domain.New, b: domain.Updated, want: domain.New},
		{name: "new beats unchanged", a: domain.Unchanged, b: domain.New, want: domain.New},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, domain.Max(tt.a, tt.b))
		})
	}
}

func TestMonitorKind_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.KindProduct.Valid())
	assert.True(t, domain.KindCollection.Valid())
	assert.True(t, domain.KindSearch.Valid())
	assert.False(t, domain.MonitorKind("category").Valid())
	assert.False(t, domain.MonitorKind("").Valid())
}

func TestTransport_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.TransportDiscord.Valid())
	assert.True(t, domain.TransportTelegram.Valid())
	assert.True(t, domain.TransportEmail.Valid())
	assert.False(t, domain.Transport("slack").Valid())
}

func TestProductSnapshot_AnyAvailable(t *testing.T) {
	t.Parallel()

	p := &domain.ProductSnapshot{Variants: []domain.VariantSnapshot{
		{ID: "1", Available: false},
		{ID: "2", Available: false},
	}}
	assert.False(t, p.AnyAvailable())

	p.Variants[1].Available = true
	assert.True(t, p.AnyAvailable())

	assert.False(t, (&domain.ProductSnapshot{}).AnyAvailable())
}

func TestVariantKey_String(t *testing.T) {
	t.Parallel()

	v := &domain.PersistedVariant{MonitorID: "m", ProductID: "p", VariantID: "v"}
	assert.Equal(t, "m/p/v", v.Key().String())
}
