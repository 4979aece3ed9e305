//go:build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/to404hanga/task_tracker/cmd/cronjob/ioc"
	commonioc "github.com/to404hanga/task_tracker/ioc"
	"github.com/to404hanga/task_tracker/job"
	"github.com/to404hanga/task_tracker/service"
)

func InitScheduler() *job.CronScheduler {
	wire.Build(
		commonioc.InitDB,
		commonioc.InitLogger,
		commonioc.InitRedis,
		service.NewTaskService,
		ioc.InitScheduler,
	)
	return &job.CronScheduler{}
}
