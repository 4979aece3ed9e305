package web

import (
	"github.com/gin-gonic/gin"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/constants"
	"github.com/to404hanga/task_tracker/model"
	"github.com/to404hanga/task_tracker/pkg/gintool"
	"github.com/to404hanga/task_tracker/service"
)

type TagHandler struct {
	adminChecker
	tagSvc service.TagService
	log    loggerv2.Logger
}

var _ Handler = (*TagHandler)(nil)

func NewTagHandler(tagSvc service.TagService, userSvc service.UserService, log loggerv2.Logger) *TagHandler {
	return &TagHandler{
		adminChecker: adminChecker{userSvc: userSvc, log: log},
		tagSvc:       tagSvc,
		log:          log,
	}
}

func (h *TagHandler) Register(r *gin.Engine) {
	r.GET(constants.GetTagListPath, gintool.WrapUserHandler(h.GetTagList, h.log))
	r.GET(constants.GetTaskTagListPath, gintool.WrapUserHandler(h.GetTaskTagList, h.log))
	r.POST(constants.CreateTagPath, gintool.WrapHandler(h.CreateTag, h.log))
	r.PUT(constants.UpdateTagPath, gintool.WrapHandler(h.UpdateTag, h.log))
	r.POST(constants.AddTaskTagPath, gintool.WrapHandler(h.AddTaskTag, h.log))
	r.DELETE(constants.RemoveTaskTagPath, gintool.WrapHandler(h.RemoveTaskTag, h.log))
}

func (h *TagHandler) GetTagList(c *gin.Context, param *model.GetTagListParam) {
	fields := []logger.Field{}
	if param.IsPublished != nil {
		fields = append(fields, logger.Bool("is_published", *param.IsPublished))
	}
	if param.IsOfficial != nil {
		fields = append(fields, logger.Bool("is_official", *param.IsOfficial))
	}
	ctx := loggerv2.ContextWithFields(c.Request.Context(), fields...)

	tags, err := h.tagSvc.GetTags(ctx, param)
	if err != nil {
		gintool.GinErrorResponse(c, errorCode(err), err)
		h.log.ErrorContext(ctx, "GetTags failed", logger.Error(err))
		return
	}

	success(c, &model.GetTagListResponse{List: tags})
}

func (h *TagHandler) GetTaskTagList(c *gin.Context, param *model.GetTaskTagListParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(), logger.String("task_id", param.TaskID))

	tags, err := h.tagSvc.GetTagsByTaskID(ctx, param.TaskID)
	if err != nil {
		gintool.GinErrorResponse(c, errorCode(err), err)
		h.log.ErrorContext(ctx, "GetTagsByTaskID failed", logger.Error(err))
		return
	}

	success(c, &model.GetTaskTagListResponse{List: tags})
}

func (h *TagHandler) CreateTag(c *gin.Context, param *model.CreateTagParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(), logger.String("name", param.Name))

	if !h.checkAdmin(c, param.Operator) {
		return
	}

	tag, err := h.tagSvc.CreateTag(ctx, param)
	if err != nil {
		gintool.GinErrorResponse(c, errorCode(err), err)
		h.log.ErrorContext(ctx, "CreateTag failed", logger.Error(err))
		return
	}

	success(c, tag)
}

func (h *TagHandler) UpdateTag(c *gin.Context, param *model.UpdateTagParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(), logger.Uint64("tag_id", param.ID))

	if !h.checkAdmin(c, param.Operator) {
		return
	}

	if err := h.tagSvc.UpdateTag(ctx, param); err != nil {
		gintool.GinErrorResponse(c, errorCode(err), err)
		h.log.ErrorContext(ctx, "UpdateTag failed", logger.Error(err))
		return
	}

	success(c, nil)
}

func (h *TagHandler) AddTaskTag(c *gin.Context, param *model.TaskTagParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.String("task_id", param.TaskID),
		logger.Uint64("tag_id", param.TagID))

	if !h.checkAdmin(c, param.Operator) {
		return
	}

	if err := h.tagSvc.AddTaskTag(ctx, param); err != nil {
		gintool.GinErrorResponse(c, errorCode(err), err)
		h.log.ErrorContext(ctx, "AddTaskTag failed", logger.Error(err))
		return
	}

	success(c, nil)
}

func (h *TagHandler) RemoveTaskTag(c *gin.Context, param *model.TaskTagParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.String("task_id", param.TaskID),
		logger.Uint64("tag_id", param.TagID))

	if !h.checkAdmin(c, param.Operator) {
		return
	}

	if err := h.tagSvc.RemoveTaskTag(ctx, param.TaskID, param.TagID); err != nil {
		gintool.GinErrorResponse(c, errorCode(err), err)
		h.log.ErrorContext(ctx, "RemoveTaskTag failed", logger.Error(err))
		return
	}

	success(c, nil)
}
