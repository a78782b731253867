package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskLevel(t *testing.T) {
	tests := []struct {
		mag  float64
		want Risk
	}{
		{0.5, RiskLow},
		{2.4, RiskLow},
		{2.5, RiskModerate},
		{4.4, RiskModerate},
		{4.5, RiskHigh},
		{5.9, RiskHigh},
		{6.0, RiskCritical},
		{8.2, RiskCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RiskLevel(tt.mag), "magnitude %.1f", tt.mag)
	}
}

func TestRisk_String(t *testing.T) {
	assert.Equal(t, "LOW", RiskLow.String())
	assert.Equal(t, "MODERATE", RiskModerate.String())
	assert.Equal(t, "HIGH", RiskHigh.String())
	assert.Equal(t, "CRITICAL", RiskCritical.String())
}
