package report

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ReadScenario lê um cenário em YAML (ou JSON) como mapa de valores brutos,
// que depois passam pela mesma coerção da API.
func ReadScenario(r io.Reader) (map[string]any, error) {
	raw := map[string]any{}

	err := yaml.NewDecoder(r).Decode(&raw)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return raw, nil
		}
		return nil, errors.Wrap(err, "decoding scenario")
	}

	return raw, nil
}
