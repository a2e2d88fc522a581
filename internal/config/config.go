package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	Legacy     Legacy     `mapstructure:",squash"`
	Sync       Sync       `mapstructure:",squash"`
	LegacySync LegacySync `mapstructure:",squash"`
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

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Legacy configura o acesso à API de integração do sistema legado
type Legacy struct {
	URL            string        `mapstructure:"legacy_url"`
	AccessToken    string        `mapstructure:"legacy_access_token"`
	RequestTimeout time.Duration `mapstructure:"legacy_request_timeout"`
	ContextTimeout time.Duration `mapstructure:"legacy_context_timeout"`
}

type Sync struct {
	MaxPeriodDays int `mapstructure:"sync_max_period_days"`
}

type LegacySync struct {
	CronSchedule string   `mapstructure:"legacy_sync_cron"`
	LookbackDays int      `mapstructure:"legacy_sync_lookback_days"`
	Domains      []string `mapstructure:"legacy_sync_domains"`
	Enabled      bool     `mapstructure:"legacy_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("LEGACY_URL", "http://localhost:9090/api/v1")
	viper.SetDefault("LEGACY_ACCESS_TOKEN", "your_access_token")
	viper.SetDefault("LEGACY_REQUEST_TIMEOUT", "90s")  // Consultas em períodos longos são lentas
	viper.SetDefault("LEGACY_CONTEXT_TIMEOUT", "120s") // Limite total da chamada, incluindo leitura do corpo

	viper.SetDefault("SYNC_MAX_PERIOD_DAYS", 92) // Um trimestre por execução

	viper.SetDefault("LEGACY_SYNC_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("LEGACY_SYNC_LOOKBACK_DAYS", 3)
	viper.SetDefault("LEGACY_SYNC_DOMAINS", "stores,collaborators,sales,exchanges")
	viper.SetDefault("LEGACY_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
