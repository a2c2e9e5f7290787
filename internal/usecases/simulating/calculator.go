package simulating

import (
	"github.com/vfg2006/ad-projection-api/internal/domain"
)

// Compute calcula as métricas de um único mês a partir dos parâmetros.
// Todo denominador não positivo resulta em 0 para a métrica dependente.
func Compute(input domain.SimulationInput) domain.SinglePeriodResult {
	revenue := input.AdCost * percent(input.ROAS)

	numberOfSales := safeDiv(revenue, input.ProductPrice)
	cpa := safeDiv(input.AdCost, numberOfSales)

	profitAmount := revenue * percent(input.ProfitMargin)
	affiliateAmount := profitAmount * percent(input.AffiliateCommission)
	profitBeforeAdCost := profitAmount - affiliateAmount

	profit := profitBeforeAdCost
	if !input.FirstMonthFree {
		profit -= input.AdCost
	}

	roasActual := 0.0
	if input.AdCost > 0 {
		roasActual = revenue / input.AdCost * 100
	}

	return domain.SinglePeriodResult{
		Revenue:            revenue,
		NumberOfSales:      numberOfSales,
		CPA:                cpa,
		ProfitBeforeAdCost: profitBeforeAdCost,
		Profit:             profit,
		ROASActual:         roasActual,
		SeatCount:          safeDiv(input.AdCost, input.SeatCPA),
		DailyCost:          safeDiv(input.AdCost, input.OperationDays),
		AffiliateAmount:    affiliateAmount,
		ProfitAmount:       profitAmount,
	}
}

func percent(v float64) float64 {
	return v / 100
}

// safeDiv divide a por b, retornando 0 quando b <= 0
func safeDiv(a, b float64) float64 {
	if b > 0 {
		return a / b
	}
	return 0
}
