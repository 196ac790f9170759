package bootstrap

import (
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort       string `mapstructure:"SERVER_PORT"`
	RedisUrl         string `mapstructure:"REDIS_URL"`
	MongoUri         string `mapstructure:"MONGO_URI"`
	IsLocalCors      bool   `mapstructure:"LOCAL_CORS"`
	PageLimitRecords int    `mapstructure:"PAGE_LIMIT_RECORDS"`
}

func Setup(cfgPath string) (*Config, error) {
	viper.SetConfigFile(cfgPath)

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	if cfg.PageLimitRecords <= 0 {
		cfg.PageLimitRecords = 20
	}

	return &cfg, nil
}
