package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/offer-health-engine/internal/domain"
	"github.com/vfg2006/offer-health-engine/pkg/log"
	"github.com/vfg2006/offer-health-engine/pkg/utils"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Period     Period     `mapstructure:",squash"`
	Thresholds Thresholds `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Period configura a resolução de períodos do painel
type Period struct {
	EpochDate string         `mapstructure:"system_epoch_date"`
	Timezone  string         `mapstructure:"timezone"`
	Location  *time.Location `mapstructure:"-"`
}

// Thresholds são os padrões aplicados a ofertas sem configuração própria
type Thresholds struct {
	ROASGreen  float64 `mapstructure:"threshold_roas_green"`
	ROASYellow float64 `mapstructure:"threshold_roas_yellow"`
	ICGreen    float64 `mapstructure:"threshold_ic_green"`
	ICYellow   float64 `mapstructure:"threshold_ic_yellow"`
	CPCGreen   float64 `mapstructure:"threshold_cpc_green"`
	CPCYellow  float64 `mapstructure:"threshold_cpc_yellow"`
}

// Set converte os padrões configurados em um ThresholdSet
func (t Thresholds) Set() domain.ThresholdSet {
	return domain.ThresholdSet{
		ROAS: domain.Threshold{Green: t.ROASGreen, Yellow: t.ROASYellow},
		IC:   domain.Threshold{Green: t.ICGreen, Yellow: t.ICYellow},
		CPC:  domain.Threshold{Green: t.CPCGreen, Yellow: t.CPCYellow},
	}
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("SYSTEM_EPOCH_DATE", domain.SystemEpoch) // Início do histórico do sistema
	viper.SetDefault("TIMEZONE", "America/Sao_Paulo")        // Calendário local do painel

	viper.SetDefault("THRESHOLD_ROAS_GREEN", domain.DefaultROASGreen)
	viper.SetDefault("THRESHOLD_ROAS_YELLOW", domain.DefaultROASYellow)
	viper.SetDefault("THRESHOLD_IC_GREEN", domain.DefaultICGreen)
	viper.SetDefault("THRESHOLD_IC_YELLOW", domain.DefaultICYellow)
	viper.SetDefault("THRESHOLD_CPC_GREEN", domain.DefaultCPCGreen)
	viper.SetDefault("THRESHOLD_CPC_YELLOW", domain.DefaultCPCYellow)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	logLevel := log.SetLevel(config.App.LogLevel)
	logrus.Debugf("Nível de log configurado para: %s", logLevel)

	config.Period.Location = loadLocation(config.Period.Timezone)

	if _, err := utils.ParseDateIn(config.Period.EpochDate, config.Period.Location); err != nil || config.Period.EpochDate == "" {
		logrus.WithFields(logrus.Fields{
			"system_epoch_date": config.Period.EpochDate,
		}).Warnf("Data inicial do sistema inválida, usando %s", domain.SystemEpoch)
		config.Period.EpochDate = domain.SystemEpoch
	}

	return config, nil
}

// loadLocation carrega o fuso do painel; na falha usa o fuso local do processo
func loadLocation(name string) *time.Location {
	if name == "" {
		return time.Local
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		logrus.WithError(err).WithField("timezone", name).Warn("Fuso horário inválido, usando o fuso local")
		return time.Local
	}

	return loc
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

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
