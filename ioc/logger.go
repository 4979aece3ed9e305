package ioc

import (
	"log"

	"github.com/spf13/viper"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/config"
	"go.uber.org/zap"
)

func InitLogger() loggerv2.Logger {
	var cfg config.LoggerConfig
	if err := viper.UnmarshalKey(cfg.Key(), &cfg); err != nil {
		log.Panicf("unmarshal logger config failed: %v", err)
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	if cfg.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			log.Panicf("parse logger level failed: %v", err)
		}
		zcfg.Level = level
	}
	if cfg.Encoding != "" {
		zcfg.Encoding = cfg.Encoding
	}
	if len(cfg.OutputPaths) > 0 {
		zcfg.OutputPaths = cfg.OutputPaths
	}

	l, err := zcfg.Build()
	if err != nil {
		log.Panicf("build zap logger failed: %v", err)
	}
	return loggerv2.NewZapContextLogger(l)
}
