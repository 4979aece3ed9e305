package ioc

import (
	"log"
	"net/http"
	"time"

	"github.com/spf13/viper"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/cmd/cronjob/config"
	"github.com/to404hanga/task_tracker/job"
	"github.com/to404hanga/task_tracker/job/importer"
	"github.com/to404hanga/task_tracker/service"
)

const defaultProblemsURL = "https://kenkoooo.com/atcoder/resources/problems.json"

func InitTaskImporter(taskSvc service.TaskService, l loggerv2.Logger) *job.JobConfig {
	var cfg config.TaskImporterConfig
	err := viper.UnmarshalKey(cfg.Key(), &cfg)
	if err != nil {
		log.Panicf("unmarshal task importer config fail, err: %v", err)
	}
	if cfg.URL == "" {
		cfg.URL = defaultProblemsURL
	}
	httpTimeout := 30 * time.Second
	if cfg.HTTPTimeout > 0 {
		httpTimeout = time.Duration(cfg.HTTPTimeout) * time.Second
	}

	m := importer.NewTaskImporter(&http.Client{Timeout: httpTimeout}, cfg.URL, cfg.ContestTypes, taskSvc, l)
	jbCfg := &job.JobConfig{
		Name:        "AtCoder 题目导入",
		CronExpr:    cfg.CronExpr,
		JobFunc:     m.RunImport,
		Description: "从 AtCoder Problems 导入新题目, 难度默认为 PENDING",
		Enabled:     cfg.Enabled,
		Timeout:     time.Duration(cfg.Timeout) * time.Millisecond,
	}
	return jbCfg
}
