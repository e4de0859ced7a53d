package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	YouTube      YouTube      `mapstructure:",squash"`
	Cors         Cors         `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	ReportDigest ReportDigest `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// YouTube reúne todas as origens de credencial aceitas, em ordem de prioridade,
// e os endpoints das APIs (vazios = padrão do Google).
type YouTube struct {
	ClientID                 string `mapstructure:"yt_client_id"`
	ClientSecret             string `mapstructure:"yt_client_secret"`
	RefreshToken             string `mapstructure:"yt_refresh_token"`
	ServiceAccountJSON       string `mapstructure:"gcp_service_account_json"`
	GoogleServiceAccountJSON string `mapstructure:"google_service_account_json"`
	ServiceAccountJSONBase64 string `mapstructure:"gcp_service_account_json_base64"`
	ApplicationCredentials   string `mapstructure:"google_application_credentials"`
	DataEndpoint             string `mapstructure:"yt_data_endpoint"`
	AnalyticsEndpoint        string `mapstructure:"yt_analytics_endpoint"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Auth protege a API com JWT quando Secret não está vazio.
type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type ReportDigest struct {
	CronSchedule string `mapstructure:"report_digest_cron"`
	Enabled      bool   `mapstructure:"report_digest_enabled"`
	Days         int    `mapstructure:"report_digest_days"`
	Limit        int    `mapstructure:"report_digest_limit"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("YT_CLIENT_ID", "")
	viper.SetDefault("YT_CLIENT_SECRET", "")
	viper.SetDefault("YT_REFRESH_TOKEN", "")
	viper.SetDefault("GCP_SERVICE_ACCOUNT_JSON", "")
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_JSON", "")
	viper.SetDefault("GCP_SERVICE_ACCOUNT_JSON_BASE64", "")
	viper.SetDefault("GOOGLE_APPLICATION_CREDENTIALS", "")
	viper.SetDefault("YT_DATA_ENDPOINT", "")
	viper.SetDefault("YT_ANALYTICS_ENDPOINT", "")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("REPORT_DIGEST_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("REPORT_DIGEST_ENABLED", false)
	viper.SetDefault("REPORT_DIGEST_DAYS", 7)
	viper.SetDefault("REPORT_DIGEST_LIMIT", 12)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
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

	if len(config.Cors.AllowedOrigins) == 0 {
		config.Cors.AllowedOrigins = []string{"*"}
	}

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
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando apenas variáveis de ambiente")
}
