package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                   App                   `mapstructure:",squash"`
	Server                Server                `mapstructure:",squash"`
	Dataset               Dataset               `mapstructure:",squash"`
	Database              Database              `mapstructure:",squash"`
	Stats                 Stats                 `mapstructure:",squash"`
	Pagination            Pagination            `mapstructure:",squash"`
	DashboardSnapshotSync DashboardSnapshotSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Dataset aponta para a fonte da coleção inicial de clientes.
// Source aceita "file" (JSON local) ou "postgres".
type Dataset struct {
	Source string `mapstructure:"dataset_source"`
	Path   string `mapstructure:"dataset_path"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Stats configura o colaborador de estatísticas do dashboard
type Stats struct {
	URL               string `mapstructure:"stats_url"`
	TimeoutSeconds    int    `mapstructure:"stats_timeout_seconds"`
	TopProductsLimit  int    `mapstructure:"stats_top_products_limit"`
	RecentOrdersLimit int    `mapstructure:"stats_recent_orders_limit"`
}

type Pagination struct {
	DefaultPageSize int `mapstructure:"pagination_default_page_size"`
	MaxPageSize     int `mapstructure:"pagination_max_page_size"`
}

type DashboardSnapshotSync struct {
	CronSchedule string `mapstructure:"dashboard_snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"dashboard_snapshot_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATASET_SOURCE", "file")
	viper.SetDefault("DATASET_PATH", "data/customers.json")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/customer_admin")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("STATS_URL", "http://localhost:9000/admin")
	viper.SetDefault("STATS_TIMEOUT_SECONDS", 10)
	viper.SetDefault("STATS_TOP_PRODUCTS_LIMIT", 5)
	viper.SetDefault("STATS_RECENT_ORDERS_LIMIT", 10)

	viper.SetDefault("PAGINATION_DEFAULT_PAGE_SIZE", 10)
	viper.SetDefault("PAGINATION_MAX_PAGE_SIZE", 50)

	// Defaults para o snapshot do dashboard
	viper.SetDefault("DASHBOARD_SNAPSHOT_SYNC_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("DASHBOARD_SNAPSHOT_SYNC_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado; usando variáveis de ambiente")
}
