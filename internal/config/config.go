package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Dataset       Dataset       `mapstructure:",squash"`
	Dashboard     Dashboard     `mapstructure:",squash"`
	DatasetReload DatasetReload `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Dataset configura a origem das tabelas (csv ou postgres) e os nomes dos arquivos
type Dataset struct {
	Source          string `mapstructure:"data_source"`
	Dir             string `mapstructure:"data_dir"`
	CustomersFile   string `mapstructure:"customers_file"`
	OrdersFile      string `mapstructure:"orders_file"`
	PaymentsFile    string `mapstructure:"payments_file"`
	GeolocationFile string `mapstructure:"geolocation_file"`
}

// Dashboard configura quais relatórios são exibidos e o limite de linhas do resumo geográfico
type Dashboard struct {
	Title           string   `mapstructure:"dashboard_title"`
	Subtitle        string   `mapstructure:"dashboard_subtitle"`
	Reports         []string `mapstructure:"dashboard_reports"`
	GeoDefaultLimit int      `mapstructure:"geo_default_limit"`
	GeoMaxLimit     int      `mapstructure:"geo_max_limit"`
}

type DatasetReload struct {
	CronSchedule string `mapstructure:"dataset_reload_cron"`
	Enabled      bool   `mapstructure:"dataset_reload_enabled"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ecommerce?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("DATA_SOURCE", "csv")
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("CUSTOMERS_FILE", "customers_dataset.csv")
	viper.SetDefault("ORDERS_FILE", "orders_dataset.csv")
	viper.SetDefault("PAYMENTS_FILE", "order_payments_dataset.csv")
	viper.SetDefault("GEOLOCATION_FILE", "geolocation_dataset.csv")

	viper.SetDefault("DASHBOARD_TITLE", "Analisis pengguna E-Commerce")
	viper.SetDefault("DASHBOARD_SUBTITLE", "By: Muhammad Ali Pratama")
	viper.SetDefault("DASHBOARD_REPORTS", "payment_methods,order_status,monthly_trend,geo")
	viper.SetDefault("GEO_DEFAULT_LIMIT", 10) // Linhas exibidas por padrão na aba de cidades
	viper.SetDefault("GEO_MAX_LIMIT", 100)    // Limite máximo aceito no parâmetro limit

	viper.SetDefault("DATASET_RELOAD_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("DATASET_RELOAD_ENABLED", false)

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func (c *Config) validate() error {
	c.Dataset.Source = strings.ToLower(strings.TrimSpace(c.Dataset.Source))
	if c.Dataset.Source != "csv" && c.Dataset.Source != "postgres" {
		return fmt.Errorf("DATA_SOURCE inválido: %q (use csv ou postgres)", c.Dataset.Source)
	}

	if c.Dashboard.GeoMaxLimit <= 0 {
		return fmt.Errorf("GEO_MAX_LIMIT deve ser positivo")
	}

	if c.Dashboard.GeoDefaultLimit <= 0 || c.Dashboard.GeoDefaultLimit > c.Dashboard.GeoMaxLimit {
		return fmt.Errorf("GEO_DEFAULT_LIMIT deve estar entre 1 e %d", c.Dashboard.GeoMaxLimit)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
