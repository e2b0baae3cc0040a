package config

import (
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Database *dbConfig
	Service  *svcConfig
}

type dbConfig struct {
	Type     string `envconfig:"DB_TYPE" default:"sqlite"`
	Hostname string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"voltage-planner.db"`
	User     string `envconfig:"DB_USER" default:"admin"`
	Password string `envconfig:"DB_PASS" default:"adminpass"`
}

type svcConfig struct {
	Address        string `envconfig:"VOLTAGE_PLANNER_ADDRESS" default:":3443"`
	MetricsAddress string `envconfig:"VOLTAGE_PLANNER_METRICS_ADDRESS" default:":8080"`
	BaseUrl        string `envconfig:"VOLTAGE_PLANNER_BASE_URL" default:"http://localhost:3443"`
	LogLevel       string `envconfig:"VOLTAGE_PLANNER_LOG_LEVEL" default:"info"`
	SettingsFile   string `envconfig:"VOLTAGE_PLANNER_SETTINGS_FILE" default:""`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}
