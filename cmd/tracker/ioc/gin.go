package ioc

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/config"
	"github.com/to404hanga/task_tracker/pkg/gintool"
	"github.com/to404hanga/task_tracker/web"
	"github.com/to404hanga/task_tracker/web/jwt"
	"github.com/to404hanga/task_tracker/web/middleware"
)

func InitGinServer(l loggerv2.Logger, jwtHandler jwt.Handler,
	taskHandler *web.TaskHandler,
	taskResultHandler *web.TaskResultHandler,
	contestTableHandler *web.ContestTableHandler,
	tagHandler *web.TagHandler,
	workBookHandler *web.WorkBookHandler,
	healthHandler *web.HealthHandler,
) *web.GinServer {
	var cfg config.GinConfig
	err := viper.UnmarshalKey(cfg.Key(), &cfg)
	if err != nil {
		log.Panicf("unmarshal gin config failed, err: %v", err)
	}

	// 优先使用环境变量中设置的服务端口
	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	corsBuilder := middleware.NewCORSMiddlewareBuilder(
		cfg.AllowOrigins,
		cfg.AllowMethods,
		cfg.AllowHeaders,
		cfg.ExposeHeaders,
		cfg.AllowCredentials,
		time.Duration(cfg.MaxAge)*time.Second)
	jwtBuilder := middleware.NewJWTMiddlewareBuilder(jwtHandler, l, cfg.CheckLoginPath)

	engine := gin.Default()
	engine.Use(
		corsBuilder.Build(),
		gintool.ContextMiddleware(),
		jwtBuilder.CheckLogin(),
	)
	if cfg.EnablePprof {
		pprof.Register(engine)
	}

	taskHandler.Register(engine)
	taskResultHandler.Register(engine)
	contestTableHandler.Register(engine)
	tagHandler.Register(engine)
	workBookHandler.Register(engine)
	healthHandler.Register(engine)

	return web.NewGinServer(engine, cfg.Addr)
}

// InitShutdownTimeout 优雅退出的等待时间
func InitShutdownTimeout() time.Duration {
	var cfg config.GinConfig
	if err := viper.UnmarshalKey(cfg.Key(), &cfg); err != nil {
		log.Panicf("unmarshal gin config failed, err: %v", err)
	}
	if cfg.ShutdownTimeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(cfg.ShutdownTimeout) * time.Second
}
