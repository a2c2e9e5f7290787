package simulating

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de simulação
var (
	ErrHorizonTooLong = errors.New("projection horizon too long")
)

// SimulationError é um erro com contexto adicional para simulações
type SimulationError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *SimulationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *SimulationError) Unwrap() error {
	return e.Err
}

// NewSimulationError cria um novo SimulationError
func NewSimulationError(err error, code string, details string) *SimulationError {
	return &SimulationError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
