package web

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/constants"
	"github.com/to404hanga/task_tracker/entity"
	"github.com/to404hanga/task_tracker/model"
	"github.com/to404hanga/task_tracker/pkg/contest"
	"github.com/to404hanga/task_tracker/pkg/gintool"
	"github.com/to404hanga/task_tracker/service"
)

type TaskHandler struct {
	adminChecker
	taskSvc service.TaskService
	log     loggerv2.Logger
}

var _ Handler = (*TaskHandler)(nil)

func NewTaskHandler(taskSvc service.TaskService, userSvc service.UserService, log loggerv2.Logger) *TaskHandler {
	return &TaskHandler{
		adminChecker: adminChecker{userSvc: userSvc, log: log},
		taskSvc:      taskSvc,
		log:          log,
	}
}

func (h *TaskHandler) Register(r *gin.Engine) {
	r.GET(constants.GetTaskListPath, gintool.WrapUserHandler(h.GetTaskList, h.log))
	r.GET(constants.GetTaskPath, gintool.WrapUserHandler(h.GetTask, h.log))
	r.POST(constants.CreateTaskPath, gintool.WrapHandler(h.CreateTask, h.log))
	r.PUT(constants.UpdateTaskPath, gintool.WrapHandler(h.UpdateTask, h.log))
}

func toTaskView(t entity.Task) model.Task {
	return model.Task{
		Task:         t,
		ContestLabel: contest.NameLabel(t.ContestID),
		TaskLabel:    contest.TaskLabel(t.ContestID, t.TaskTableIndex),
		GradeLabel:   t.Grade.Label(),
		ContestURL:   contest.ContestURL(t.ContestID),
		TaskURL:      contest.TaskURL(t.ContestID, t.TaskID),
	}
}

func (h *TaskHandler) GetTaskList(c *gin.Context, param *model.GetTaskListParam) {
	fields := []logger.Field{
		logger.Int("page", param.Page),
		logger.Int("page_size", param.PageSize),
	}
	if param.ContestID != "" {
		fields = append(fields, logger.String("contest_id", param.ContestID))
	}
	if param.ContestType != "" {
		fields = append(fields, logger.String("contest_type", param.ContestType))
	}
	if param.Grade != "" {
		fields = append(fields, logger.String("grade", param.Grade))
	}
	if param.Title != "" {
		fields = append(fields, logger.String("title", param.Title))
	}
	ctx := loggerv2.ContextWithFields(c.Request.Context(), fields...)

	tasks, total, err := h.taskSvc.GetTaskList(ctx, param)
	if err != nil {
		gintool.GinErrorResponse(c, errorCode(err), err)
		h.log.ErrorContext(ctx, "GetTaskList failed", logger.Error(err))
		return
	}

	success(c, &model.GetTaskListResponse{
		List: lo.Map(tasks, func(t entity.Task, _ int) model.Task {
			return toTaskView(t)
		}),
		Total:    total,
		Page:     param.Page,
		PageSize: param.PageSize,
	})
}

func (h *TaskHandler) GetTask(c *gin.Context, param *model.GetTaskParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(), logger.String("task_id", param.TaskID))

	task, err := h.taskSvc.GetTask(ctx, param.TaskID)
	if err != nil {
		gintool.GinErrorResponse(c, errorCode(err), err)
		h.log.ErrorContext(ctx, "GetTask failed", logger.Error(err))
		return
	}

	success(c, toTaskView(*task))
}

func (h *TaskHandler) CreateTask(c *gin.Context, param *model.CreateTaskParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.String("contest_id", param.ContestID),
		logger.String("task_id", param.TaskID))

	if !h.checkAdmin(c, param.Operator) {
		return
	}

	if err := h.taskSvc.CreateTask(ctx, param); err != nil {
		gintool.GinErrorResponse(c, errorCode(err), err)
		h.log.ErrorContext(ctx, "CreateTask failed", logger.Error(err))
		return
	}

	success(c, nil)
}

func (h *TaskHandler) UpdateTask(c *gin.Context, param *model.UpdateTaskParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(), logger.String("task_id", param.TaskID))

	if !h.checkAdmin(c, param.Operator) {
		return
	}

	if err := h.taskSvc.UpdateTask(ctx, param); err != nil {
		gintool.GinErrorResponse(c, errorCode(err), err)
		h.log.ErrorContext(ctx, "UpdateTask failed", logger.Error(err))
		return
	}

	success(c, nil)
}
