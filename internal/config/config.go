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
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Sheets    Sheets    `mapstructure:",squash"`
	SheetSync SheetSync `mapstructure:",squash"`
	Report    Report    `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Sheets descreve a planilha de origem. As três abas (transações, itens e
// equipe) vivem no mesmo documento e são endereçadas pelo GID de cada aba,
// exportadas em CSV pelo endpoint público do provedor.
type Sheets struct {
	BaseURL             string `mapstructure:"sheets_base_url"`
	SpreadsheetID       string `mapstructure:"sheets_spreadsheet_id"`
	TransactionsGID     string `mapstructure:"sheets_transactions_gid"`
	ItemsGID            string `mapstructure:"sheets_items_gid"`
	StaffGID            string `mapstructure:"sheets_staff_gid"`
	FetchTimeoutSeconds int    `mapstructure:"sheets_fetch_timeout_seconds"`

	// A aba de equipe tem um cabeçalho irregular fixo: linhas decorativas no
	// topo e colunas extras à direita que não fazem parte dos dados.
	StaffSkipRows int `mapstructure:"sheets_staff_skip_rows"`
}

type SheetSync struct {
	CronSchedule string `mapstructure:"sheet_sync_cron"`
	Enabled      bool   `mapstructure:"sheet_sync_enabled"`
}

type Report struct {
	// Percentual da venda repassado como comissão no resumo de pagamento
	PayRate float64 `mapstructure:"report_pay_rate"`
	// Limite dos rankings de lucro por item e vendas por cliente
	TopLimit int `mapstructure:"report_top_limit"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("SHEETS_BASE_URL", "https://docs.google.com/spreadsheets/d")
	viper.SetDefault("SHEETS_SPREADSHEET_ID", "1G610FKLUj3GVXhslfVGRUrJFjdi5NldYaKvJtKuwiJQ")
	viper.SetDefault("SHEETS_TRANSACTIONS_GID", "20213426")
	viper.SetDefault("SHEETS_ITEMS_GID", "925974495")
	viper.SetDefault("SHEETS_STAFF_GID", "475012657")
	viper.SetDefault("SHEETS_FETCH_TIMEOUT_SECONDS", 30)
	viper.SetDefault("SHEETS_STAFF_SKIP_ROWS", 3)

	// Defaults para a atualização agendada do snapshot
	viper.SetDefault("SHEET_SYNC_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("SHEET_SYNC_ENABLED", false)

	viper.SetDefault("REPORT_PAY_RATE", 0.30)
	viper.SetDefault("REPORT_TOP_LIMIT", 10)

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

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Sheets.SpreadsheetID == "" {
		return nil, fmt.Errorf("SHEETS_SPREADSHEET_ID é obrigatório")
	}

	return config, nil
}

// ExportURL monta a URL de exportação CSV de uma aba da planilha
func (s Sheets) ExportURL(gid string) string {
	return fmt.Sprintf("%s/%s/export?format=csv&gid=%s", s.BaseURL, s.SpreadsheetID, gid)
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
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
