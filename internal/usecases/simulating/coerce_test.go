package simulating

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-projection-api/internal/domain"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  float64
	}{
		{"float", 1500.5, 1500.5},
		{"int", 42, 42},
		{"texto numérico", "600000", 600000},
		{"texto com espaços", "  12.5 ", 12.5},
		{"texto não numérico", "abc", 0},
		{"texto vazio", "", 0},
		{"nulo", nil, 0},
		{"NaN", math.NaN(), 0},
		{"infinito", math.Inf(1), 0},
		{"texto infinito", "Inf", 0},
		{"negativo", "-300", -300},
		{"lista", []any{1, 2}, 0},
		{"booleano verdadeiro", true, 0},
		{"booleano falso", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToNumber(tt.value))
		})
	}
}

func TestToMonths(t *testing.T) {
	assert.Equal(t, 12, ToMonths("12"))
	assert.Equal(t, 6, ToMonths(6.9))
	assert.Equal(t, 0, ToMonths("-4"))
	assert.Equal(t, 0, ToMonths("doze"))
	assert.Equal(t, math.MaxInt32, ToMonths(1e12))
}

func TestToFlag(t *testing.T) {
	for _, value := range []any{true, "true", "1", "on", "YES", 1.0} {
		assert.True(t, ToFlag(value), "%v", value)
	}

	for _, value := range []any{false, "false", "0", "off", "", "talvez", nil, 0.0} {
		assert.False(t, ToFlag(value), "%v", value)
	}
}

func TestCoerceInput(t *testing.T) {
	base := domain.DefaultSimulationInput()

	raw := map[string]any{
		KeyAdCost:         "100000",
		KeyProductPrice:   "não é número",
		KeyROAS:           250.0,
		KeyMonths:         "24",
		KeyFirstMonthFree: "false",
		KeyConversionRate: "3.5",
		KeySeatCPA:        true,
		"unknownField":    "ignored",
	}

	input := CoerceInput(raw, base)

	assert.Equal(t, 100000.0, input.AdCost)
	assert.Equal(t, 0.0, input.ProductPrice)
	assert.Equal(t, 250.0, input.ROAS)
	assert.Equal(t, 24, input.Months)
	assert.False(t, input.FirstMonthFree)
	assert.Equal(t, 3.5, input.ConversionRate)
	assert.Equal(t, 0.0, input.SeatCPA)

	// chaves ausentes mantêm o valor base
	assert.Equal(t, base.ProfitMargin, input.ProfitMargin)
	assert.Equal(t, base.AffiliateCommission, input.AffiliateCommission)
	assert.Equal(t, base.SeatCPA, input.SeatCPA)
	assert.Equal(t, base.OperationDays, input.OperationDays)
}

func TestCoerceInput_NilMapReturnsBase(t *testing.T) {
	base := domain.DefaultSimulationInput()
	assert.Equal(t, base, CoerceInput(nil, base))
}
