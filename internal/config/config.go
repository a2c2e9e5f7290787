package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/ad-projection-api/internal/domain"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	Simulation Simulation `mapstructure:",squash"`
}

type Server struct {
	Host              string        `mapstructure:"host"`
	Port              string        `mapstructure:"port"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins    []string      `mapstructure:"cors_allowed_origins"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Enabled bool   `mapstructure:"auth_enabled"`
	Secret  string `mapstructure:"auth_secret"`
}

type Simulation struct {
	MaxMonths int `mapstructure:"simulation_max_months"`

	AdCost              float64 `mapstructure:"simulation_default_ad_cost"`
	ProductPrice        float64 `mapstructure:"simulation_default_product_price"`
	ROAS                float64 `mapstructure:"simulation_default_roas"`
	ProfitMargin        float64 `mapstructure:"simulation_default_profit_margin"`
	AffiliateCommission float64 `mapstructure:"simulation_default_affiliate_commission"`
	SeatCPA             float64 `mapstructure:"simulation_default_seat_cpa"`
	OperationDays       float64 `mapstructure:"simulation_default_operation_days"`
	Months              int     `mapstructure:"simulation_default_months"`
	FirstMonthFree      bool    `mapstructure:"simulation_default_first_month_free"`
	ConversionRate      float64 `mapstructure:"simulation_default_conversion_rate"`
	Appointments        float64 `mapstructure:"simulation_default_appointments"`
}

// DefaultInput monta o cenário padrão configurado
func (s Simulation) DefaultInput() domain.SimulationInput {
	return domain.SimulationInput{
		AdCost:              s.AdCost,
		ProductPrice:        s.ProductPrice,
		ROAS:                s.ROAS,
		ProfitMargin:        s.ProfitMargin,
		AffiliateCommission: s.AffiliateCommission,
		SeatCPA:             s.SeatCPA,
		OperationDays:       s.OperationDays,
		Months:              s.Months,
		FirstMonthFree:      s.FirstMonthFree,
		ConversionRate:      s.ConversionRate,
		Appointments:        s.Appointments,
	}
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("READ_HEADER_TIMEOUT", "2s")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "15s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")

	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("AUTH_SECRET", "your_secret_key") // ONLY LOCAL

	// Cenário padrão da simulação
	defaults := domain.DefaultSimulationInput()
	viper.SetDefault("SIMULATION_MAX_MONTHS", 120) // 10 anos
	viper.SetDefault("SIMULATION_DEFAULT_AD_COST", defaults.AdCost)
	viper.SetDefault("SIMULATION_DEFAULT_PRODUCT_PRICE", defaults.ProductPrice)
	viper.SetDefault("SIMULATION_DEFAULT_ROAS", defaults.ROAS)
	viper.SetDefault("SIMULATION_DEFAULT_PROFIT_MARGIN", defaults.ProfitMargin)
	viper.SetDefault("SIMULATION_DEFAULT_AFFILIATE_COMMISSION", defaults.AffiliateCommission)
	viper.SetDefault("SIMULATION_DEFAULT_SEAT_CPA", defaults.SeatCPA)
	viper.SetDefault("SIMULATION_DEFAULT_OPERATION_DAYS", defaults.OperationDays)
	viper.SetDefault("SIMULATION_DEFAULT_MONTHS", defaults.Months)
	viper.SetDefault("SIMULATION_DEFAULT_FIRST_MONTH_FREE", defaults.FirstMonthFree)
	viper.SetDefault("SIMULATION_DEFAULT_CONVERSION_RATE", defaults.ConversionRate)
	viper.SetDefault("SIMULATION_DEFAULT_APPOINTMENTS", defaults.Appointments)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Simulation.MaxMonths <= 0 {
		logrus.Warnf("SIMULATION_MAX_MONTHS inválido (%d), usando 120", config.Simulation.MaxMonths)
		config.Simulation.MaxMonths = 120
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
