package simulating

import (
	"github.com/vfg2006/ad-projection-api/internal/domain"
)

// projection guarda os acumuladores de uma única chamada de Project
type projection struct {
	baseline          float64
	currentAdCost     float64
	cumulativeAdCost  float64
	cumulativeRevenue float64
	cumulativeProfit  float64
}

// Project gera a projeção mensal com reinvestimento, do mês 0 até input.Months.
// O lucro antes do custo de anúncio de um mês positivo vira o investimento do
// mês seguinte; caso contrário o investimento volta ao valor base.
func Project(input domain.SimulationInput) []domain.ProjectionRow {
	months := input.Months
	if months < 0 {
		months = 0
	}

	state := &projection{
		baseline:      input.AdCost,
		currentAdCost: input.AdCost,
	}

	rows := make([]domain.ProjectionRow, 0, months+1)
	rows = append(rows, domain.ProjectionRow{Month: 0, AdCost: state.currentAdCost})

	for month := 1; month <= months; month++ {
		rows = append(rows, state.advance(input, month))
	}

	return rows
}

// advance processa um mês (>= 1) e prepara o investimento do próximo
func (p *projection) advance(input domain.SimulationInput, month int) domain.ProjectionRow {
	adCost := p.currentAdCost
	waived := month == 1 && input.FirstMonthFree

	revenue := adCost * percent(input.ROAS)
	profitAmount := revenue * percent(input.ProfitMargin)
	affiliateAmount := profitAmount * percent(input.AffiliateCommission)
	profitBeforeAdCost := profitAmount - affiliateAmount

	netProfit := profitBeforeAdCost
	if !waived {
		netProfit -= adCost
		p.cumulativeAdCost += adCost
	}

	p.cumulativeRevenue += revenue
	p.cumulativeProfit += netProfit

	if profitBeforeAdCost > 0 {
		p.currentAdCost = profitBeforeAdCost
	} else {
		p.currentAdCost = p.baseline
	}

	return domain.ProjectionRow{
		Month:             month,
		AdCost:            adCost,
		Revenue:           revenue,
		Profit:            profitBeforeAdCost,
		CumulativeAdCost:  p.cumulativeAdCost,
		CumulativeRevenue: p.cumulativeRevenue,
		CumulativeProfit:  p.cumulativeProfit,
	}
}

// Summarize extrai os totais e o mês de equilíbrio de uma projeção
func Summarize(rows []domain.ProjectionRow) domain.ProjectionSummary {
	summary := domain.ProjectionSummary{}
	if len(rows) == 0 {
		return summary
	}

	for _, row := range rows[1:] {
		if row.AdCost > summary.PeakAdCost {
			summary.PeakAdCost = row.AdCost
		}
		if summary.BreakEvenMonth == 0 && row.CumulativeProfit > 0 {
			summary.BreakEvenMonth = row.Month
		}
	}

	last := rows[len(rows)-1]
	summary.TotalAdCost = last.CumulativeAdCost
	summary.TotalRevenue = last.CumulativeRevenue
	summary.TotalProfit = last.CumulativeProfit

	return summary
}
