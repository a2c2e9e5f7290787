// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// SimulationInput é o conjunto de parâmetros de uma simulação de campanha.
// Percentuais (ROAS, margem, comissão) são informados multiplicados por 100.
type SimulationInput struct {
	AdCost              float64 `json:"adCost" yaml:"adCost"`
	ProductPrice        float64 `json:"productPrice" yaml:"productPrice"`
	ROAS                float64 `json:"roas" yaml:"roas"`
	ProfitMargin        float64 `json:"profitMargin" yaml:"profitMargin"`
	AffiliateCommission float64 `json:"affiliateCommission" yaml:"affiliateCommission"`
	SeatCPA             float64 `json:"seatCpa" yaml:"seatCpa"`
	OperationDays       float64 `json:"operationDays" yaml:"operationDays"`
	Months              int     `json:"months" yaml:"months"`
	FirstMonthFree      bool    `json:"firstMonthFree" yaml:"firstMonthFree"`

	// Campos aceitos e devolvidos, mas não usados em nenhum cálculo
	ConversionRate float64 `json:"conversionRate" yaml:"conversionRate"`
	Appointments   float64 `json:"appointments" yaml:"appointments"`
}

// DefaultSimulationInput retorna o cenário de referência
func DefaultSimulationInput() SimulationInput {
	return SimulationInput{
		AdCost:              500000,
		ProductPrice:        600000,
		ROAS:                300,
		ProfitMargin:        60,
		AffiliateCommission: 20,
		SeatCPA:             60000,
		OperationDays:       30,
		Months:              12,
		FirstMonthFree:      true,
	}
}

// SinglePeriodResult contém as métricas de um único mês, sem dimensão de tempo
type SinglePeriodResult struct {
	Revenue            float64 `json:"revenue"`
	NumberOfSales      float64 `json:"numberOfSales"`
	CPA                float64 `json:"cpa"`
	ProfitBeforeAdCost float64 `json:"profitBeforeAdCost"`
	Profit             float64 `json:"profit"`
	ROASActual         float64 `json:"roasActual"`
	SeatCount          float64 `json:"seatCount"`
	DailyCost          float64 `json:"dailyCost"`
	AffiliateAmount    float64 `json:"affiliateAmount"`
	ProfitAmount       float64 `json:"profitAmount"`
}

// ProjectionRow é uma linha da projeção mensal. Month 0 é a linha sentinela.
type ProjectionRow struct {
	Month             int     `json:"month"`
	AdCost            float64 `json:"adCost"`
	Revenue           float64 `json:"revenue"`
	Profit            float64 `json:"profit"` // lucro antes do custo de anúncio
	CumulativeAdCost  float64 `json:"cumulativeAdCost"`
	CumulativeRevenue float64 `json:"cumulativeRevenue"`
	CumulativeProfit  float64 `json:"cumulativeProfit"` // líquido
}

// ProjectionSummary resume a projeção para os cards de resumo
type ProjectionSummary struct {
	TotalAdCost    float64 `json:"totalAdCost"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalProfit    float64 `json:"totalProfit"`
	PeakAdCost     float64 `json:"peakAdCost"`
	BreakEvenMonth int     `json:"breakEvenMonth"` // 0 quando nunca fica positivo
}

// SimulationResponse é a resposta completa de uma simulação
type SimulationResponse struct {
	Input      SimulationInput    `json:"input"`
	Result     SinglePeriodResult `json:"result"`
	Projection []ProjectionRow    `json:"projection"`
	Summary    ProjectionSummary  `json:"summary"`
}
