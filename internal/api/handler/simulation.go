package handler

import (
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/ad-projection-api/internal/usecases/simulating"
	"github.com/vfg2006/ad-projection-api/pkg/apiErrors"
	"github.com/vfg2006/ad-projection-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// tamanho máximo aceito para o corpo da simulação
const maxBodyBytes = 64 << 10

// Simulate executa a simulação a partir de um corpo JSON. Chaves ausentes
// usam o cenário padrão e valores não numéricos viram 0.
func Simulate(service simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		raw, err := decodeSimulationBody(r)
		if err != nil {
			logger.WithError(err).Warn("simulation: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", err.Error())
			return
		}

		runSimulation(w, r, service, raw)
	})
}

// SimulateFromQuery executa a simulação a partir da query string
func SimulateFromQuery(service simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		raw := make(map[string]any, len(query))
		for key, values := range query {
			if len(values) > 0 {
				raw[key] = values[0]
			}
		}

		runSimulation(w, r, service, raw)
	})
}

// GetSimulationDefaults retorna o cenário padrão configurado
func GetSimulationDefaults(service simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, service.Defaults())
	})
}

func runSimulation(w http.ResponseWriter, r *http.Request, service simulating.Simulator, raw map[string]any) {
	logger := log.ForContext(r.Context())

	input := simulating.CoerceInput(raw, service.Defaults())

	response, err := service.Simulate(r.Context(), input)
	if err != nil {
		handleSimulationError(w, r, err)
		return
	}

	logger.WithFields(log.Fields{
		"simulation_months": input.Months,
		"simulation_rows":   len(response.Projection),
	}).Info("simulation: request completed")

	writeJSON(w, r, response)
}

func decodeSimulationBody(r *http.Request) (map[string]any, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading body")
	}
	if len(body) > maxBodyBytes {
		return nil, errors.Errorf("body larger than %d bytes", maxBodyBytes)
	}

	raw := map[string]any{}
	if strings.TrimSpace(string(body)) == "" {
		return raw, nil
	}

	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.Wrap(err, "decoding simulation input")
	}

	return raw, nil
}

// handleSimulationError traduz erros do serviço para a resposta da API
func handleSimulationError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context())

	var simErr *simulating.SimulationError
	if errors.As(err, &simErr) {
		logger.WithError(err).Warn("simulation: rejected")
		apiErr := apiErrors.FromError(simErr, simErr.Code)
		apiErrors.WriteError(w, apiErr.Code, apiErr.Message, nil)
		return
	}

	logger.WithError(err).Error("simulation: unexpected failure")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar simulação", nil)
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("failed to encode response")
	}
}
