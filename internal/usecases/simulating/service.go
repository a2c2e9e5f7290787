package simulating

import (
	"context"
	"fmt"

	"github.com/vfg2006/ad-projection-api/internal/config"
	"github.com/vfg2006/ad-projection-api/internal/domain"
	"github.com/vfg2006/ad-projection-api/pkg/apiErrors"
	"github.com/vfg2006/ad-projection-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/simulator.go -package=mocks

// Simulator executa simulações de campanha
type Simulator interface {
	// Simulate calcula o resultado mensal e a projeção com reinvestimento
	Simulate(ctx context.Context, input domain.SimulationInput) (*domain.SimulationResponse, error)

	// Defaults retorna o cenário padrão configurado
	Defaults() domain.SimulationInput
}

type Service struct {
	defaults  domain.SimulationInput
	maxMonths int
}

func NewService(cfg *config.Config) Simulator {
	return &Service{
		defaults:  cfg.Simulation.DefaultInput(),
		maxMonths: cfg.Simulation.MaxMonths,
	}
}

func (s *Service) Defaults() domain.SimulationInput {
	return s.defaults
}

func (s *Service) Simulate(ctx context.Context, input domain.SimulationInput) (*domain.SimulationResponse, error) {
	logger := log.ForContext(ctx)

	if s.maxMonths > 0 && input.Months > s.maxMonths {
		logger.WithFields(log.Fields{
			"simulation_months":     input.Months,
			"simulation_max_months": s.maxMonths,
		}).Warn("simulation: projection horizon above limit")

		return nil, NewSimulationError(
			ErrHorizonTooLong,
			apiErrors.ErrHorizonTooLong,
			fmt.Sprintf("months must be at most %d, got %d", s.maxMonths, input.Months),
		)
	}

	result := Compute(input)
	projection := Project(input)

	response := &domain.SimulationResponse{
		Input:      input,
		Result:     result,
		Projection: projection,
		Summary:    Summarize(projection),
	}

	logger.WithFields(log.Fields{
		"simulation_ad_cost":          input.AdCost,
		"simulation_months":           input.Months,
		"simulation_first_month_free": input.FirstMonthFree,
		"simulation_total_profit":     response.Summary.TotalProfit,
	}).Debug("simulation: projection computed")

	return response, nil
}
