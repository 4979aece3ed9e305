package ioc

import (
	"log"

	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/job"
	"github.com/to404hanga/task_tracker/service"
)

func InitScheduler(l loggerv2.Logger, taskSvc service.TaskService) *job.CronScheduler {
	scheduler := job.NewCronScheduler(l)

	if err := scheduler.AddJob(InitTaskImporter(taskSvc, l)); err != nil {
		log.Panicf("add task importer job failed: %v", err)
	}

	return scheduler
}
