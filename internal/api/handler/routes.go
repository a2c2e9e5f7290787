package handler

import (
	"net/http"

	"github.com/vfg2006/ad-projection-api/internal/api/handler/router"
	"github.com/vfg2006/ad-projection-api/internal/usecases/simulating"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Simulation(service simulating.Simulator) []router.Route {
	return []router.Route{
		{
			Path:    "/simulate",
			Method:  http.MethodPost,
			Handler: Simulate(service),
		},
		{
			Path:    "/v1/simulate",
			Method:  http.MethodPost,
			Handler: Simulate(service),
		},
		{
			Path:    "/v1/simulate",
			Method:  http.MethodGet,
			Handler: SimulateFromQuery(service),
		},
		{
			Path:    "/v1/simulation/defaults",
			Method:  http.MethodGet,
			Handler: GetSimulationDefaults(service),
		},
	}
}
