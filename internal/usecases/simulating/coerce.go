package simulating

import (
	"math"
	"strings"

	"github.com/spf13/cast"
	"github.com/vfg2006/ad-projection-api/internal/domain"
)

// Chaves aceitas na entrada (JSON, query string e arquivos de cenário)
const (
	KeyAdCost              = "adCost"
	KeyProductPrice        = "productPrice"
	KeyROAS                = "roas"
	KeyProfitMargin        = "profitMargin"
	KeyAffiliateCommission = "affiliateCommission"
	KeySeatCPA             = "seatCpa"
	KeyOperationDays       = "operationDays"
	KeyMonths              = "months"
	KeyFirstMonthFree      = "firstMonthFree"
	KeyConversionRate      = "conversionRate"
	KeyAppointments        = "appointments"
)

// CoerceInput aplica os valores brutos sobre base. Chaves ausentes mantêm o
// valor de base; valores numéricos inválidos viram exatamente 0.
func CoerceInput(raw map[string]any, base domain.SimulationInput) domain.SimulationInput {
	input := base

	numbers := map[string]*float64{
		KeyAdCost:              &input.AdCost,
		KeyProductPrice:        &input.ProductPrice,
		KeyROAS:                &input.ROAS,
		KeyProfitMargin:        &input.ProfitMargin,
		KeyAffiliateCommission: &input.AffiliateCommission,
		KeySeatCPA:             &input.SeatCPA,
		KeyOperationDays:       &input.OperationDays,
		KeyConversionRate:      &input.ConversionRate,
		KeyAppointments:        &input.Appointments,
	}

	for key, target := range numbers {
		if value, ok := raw[key]; ok {
			*target = ToNumber(value)
		}
	}

	if value, ok := raw[KeyMonths]; ok {
		input.Months = ToMonths(value)
	}

	if value, ok := raw[KeyFirstMonthFree]; ok {
		input.FirstMonthFree = ToFlag(value)
	}

	return input
}

// ToNumber converte um valor qualquer em float64 finito, ou 0
func ToNumber(value any) float64 {
	switch v := value.(type) {
	case bool:
		return 0
	case string:
		value = strings.TrimSpace(v)
	}

	n, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// ToMonths converte o horizonte em inteiro não negativo. Valores
// fracionários são truncados.
func ToMonths(value any) int {
	n := ToNumber(value)
	switch {
	case n < 0:
		return 0
	case n > math.MaxInt32:
		return math.MaxInt32
	}
	return int(n)
}

// ToFlag converte checkbox/booleanos; qualquer valor não reconhecido é false
func ToFlag(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		normalized := strings.ToLower(strings.TrimSpace(v))
		if normalized == "on" || normalized == "yes" {
			return true
		}

		b, err := cast.ToBoolE(normalized)
		if err != nil {
			return false
		}
		return b
	default:
		return ToNumber(value) != 0
	}
}
