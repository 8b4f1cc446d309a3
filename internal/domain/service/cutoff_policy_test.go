package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/service"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/testutil"
)

func TestCutoffPolicy_IsPastCutoff(t *testing.T) {
	policy := service.NewCutoffPolicy(service.DefaultCutoffHour, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"morning", testutil.TestMorning, false},
		{"one second before", testutil.TestAtCutoff.Add(-time.Second), false},
		{"exactly at cutoff", testutil.TestAtCutoff, true},
		{"afternoon", testutil.TestAfternoon, true},
		{"just before midnight", time.Date(2025, 3, 14, 23, 59, 59, 0, time.UTC), true},
		{"midnight", time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.IsPastCutoff(tt.now))
		})
	}
}

func TestCutoffPolicy_UsesConfiguredLocation(t *testing.T) {
	cet := time.FixedZone("CET", 3600)
	policy := service.NewCutoffPolicy(16, cet)

	// 15:30 UTC is 16:30 CET
	assert.True(t, policy.IsPastCutoff(time.Date(2025, 3, 14, 15, 30, 0, 0, time.UTC)))
	assert.False(t, policy.IsPastCutoff(time.Date(2025, 3, 14, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, cet, policy.Location())
}

func TestCutoffPolicy_NilLocationDefaultsToLocal(t *testing.T) {
	policy := service.NewCutoffPolicy(16, nil)
	assert.Equal(t, time.Local, policy.Location())
}
