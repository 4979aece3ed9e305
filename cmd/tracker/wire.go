//go:build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/to404hanga/task_tracker/cmd/tracker/ioc"
	commonioc "github.com/to404hanga/task_tracker/ioc"
	"github.com/to404hanga/task_tracker/service"
	"github.com/to404hanga/task_tracker/web"
)

func BuildDependency() *web.GinServer {
	wire.Build(
		commonioc.InitDB,
		commonioc.InitLogger,
		commonioc.InitJWTHandler,
		commonioc.InitRedis,
		commonioc.InitKafka,
		commonioc.InitExporterFactory,

		service.NewTaskService,
		service.NewAnswerService,
		service.NewTaskResultService,
		service.NewTagService,
		service.NewUserService,
		service.NewWorkBookService,
		service.NewContestTableService,

		web.NewTaskHandler,
		web.NewTaskResultHandler,
		web.NewContestTableHandler,
		web.NewTagHandler,
		web.NewWorkBookHandler,
		web.NewHealthHandler,

		ioc.InitGinServer,
	)
	return &web.GinServer{}
}
