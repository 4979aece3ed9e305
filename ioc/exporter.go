package ioc

import (
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/service"
	"github.com/to404hanga/task_tracker/service/exporter/factory"
)

func InitExporterFactory(taskResultSvc service.TaskResultService, l loggerv2.Logger) *factory.ExporterFactory {
	return factory.NewExporterFactory(taskResultSvc, l)
}
