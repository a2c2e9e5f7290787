package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/ad-projection-api/internal/config"
	"github.com/vfg2006/ad-projection-api/internal/report"
	"github.com/vfg2006/ad-projection-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-projection-api/internal/usecases/simulating"
	"github.com/vfg2006/ad-projection-api/pkg/format"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// flags numéricos são lidos como texto para aplicar a mesma coerção da API
var inputKeys = []string{
	simulating.KeyAdCost,
	simulating.KeyProductPrice,
	simulating.KeyROAS,
	simulating.KeyProfitMargin,
	simulating.KeyAffiliateCommission,
	simulating.KeySeatCPA,
	simulating.KeyOperationDays,
	simulating.KeyMonths,
	simulating.KeyFirstMonthFree,
	simulating.KeyConversionRate,
	simulating.KeyAppointments,
}

func main() {
	flags := pflag.NewFlagSet("simulate", pflag.ExitOnError)

	scenarioFile := flags.StringP("input", "i", "", "arquivo de cenário YAML/JSON")
	outputFormat := flags.StringP("format", "f", "text", "formato de saída: text ou json")
	locale := flags.String("locale", "en", "idioma usado para agrupar milhares")
	verbose := flags.BoolP("verbose", "v", false, "exibe logs de configuração")
	issueToken := flags.String("issue-token", "", "emite um token de acesso para o subject informado e sai")
	tokenTTL := flags.Duration("token-ttl", 24*time.Hour, "validade do token emitido")

	values := make(map[string]*string, len(inputKeys))
	for _, key := range inputKeys {
		values[key] = flags.String(key, "", fmt.Sprintf("sobrescreve %s", key))
	}

	_ = flags.Parse(os.Args[1:])

	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if *issueToken != "" {
		if err := writeToken(os.Stdout, authenticating.NewService(cfg), *issueToken, *tokenTTL); err != nil {
			logrus.WithError(err).Fatal("Erro ao emitir token")
		}
		return
	}

	raw := map[string]any{}
	if *scenarioFile != "" {
		raw, err = readScenarioFile(*scenarioFile)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao ler arquivo de cenário")
		}
	}

	for key, value := range values {
		if flags.Changed(key) {
			raw[key] = *value
		}
	}

	service := simulating.NewService(cfg)
	input := simulating.CoerceInput(raw, service.Defaults())

	response, err := service.Simulate(context.Background(), input)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao executar simulação")
	}

	switch *outputFormat {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(response)
	default:
		err = report.Render(os.Stdout, response, format.New(*locale))
	}

	if err != nil {
		logrus.WithError(err).Fatal("Erro ao escrever resultado")
	}
}

func readScenarioFile(path string) (map[string]any, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	raw, err := report.ReadScenario(file)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		raw = map[string]any{}
	}

	return raw, nil
}

// writeToken emite um token assinado com AUTH_SECRET para uso no header Authorization
func writeToken(w io.Writer, auth authenticating.Authenticator, subject string, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("token-ttl must be positive, got %s", ttl)
	}

	if !auth.Enabled() {
		logrus.Warn("AUTH_ENABLED=false: o servidor não vai exigir este token")
	}

	token, err := auth.GenerateToken(subject, ttl)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, token)
	return err
}
