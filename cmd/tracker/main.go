package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/to404hanga/task_tracker/cmd/tracker/ioc"
)

const defaultConfigPath = "./config/config.yaml"

func main() {
	cfile := pflag.String("config", defaultConfigPath, "config file path")
	pflag.Parse()

	viper.SetConfigFile(*cfile)
	if err := viper.ReadInConfig(); err != nil {
		log.Panicf("read config file failed: %v", err)
	}

	gin.DisableBindValidation()

	app := BuildDependency()
	go func() {
		log.Println("gin server start")
		if err := app.Start(); err != nil {
			log.Panicf("gin server failed: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ioc.InitShutdownTimeout())
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		log.Printf("gin server shutdown failed: %v", err)
	}
	log.Println("gin server stopped")
}
