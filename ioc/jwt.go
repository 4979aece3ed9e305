package ioc

import (
	"log"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"github.com/to404hanga/task_tracker/config"
	"github.com/to404hanga/task_tracker/web/jwt"
)

func InitJWTHandler(client redis.Cmdable) jwt.Handler {
	var cfg config.JWTConfig
	if err := viper.UnmarshalKey(cfg.Key(), &cfg); err != nil {
		log.Panicf("unmarshal jwt config failed: %v", err)
	}
	if cfg.JwtKey == "" {
		log.Panicf("jwt key is required")
	}
	return jwt.NewRedisJWTHandler(client, []byte(cfg.JwtKey))
}
