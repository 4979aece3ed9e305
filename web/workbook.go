package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/constants"
	"github.com/to404hanga/task_tracker/model"
	"github.com/to404hanga/task_tracker/pkg/gintool"
	"github.com/to404hanga/task_tracker/service"
)

type WorkBookHandler struct {
	workBookSvc service.WorkBookService
	log         loggerv2.Logger
}

var _ Handler = (*WorkBookHandler)(nil)

func NewWorkBookHandler(workBookSvc service.WorkBookService, log loggerv2.Logger) *WorkBookHandler {
	return &WorkBookHandler{
		workBookSvc: workBookSvc,
		log:         log,
	}
}

func (h *WorkBookHandler) Register(r *gin.Engine) {
	r.POST(constants.CreateWorkBookPath, gintool.WrapUserHandler(h.CreateWorkBook, h.log))
	r.GET(constants.GetWorkBookPath, gintool.WrapUserHandler(h.GetWorkBook, h.log))
	r.GET(constants.GetWorkBookListPath, gintool.WrapUserHandler(h.GetWorkBookList, h.log))
	r.PUT(constants.UpdateWorkBookPath, gintool.WrapUserHandler(h.UpdateWorkBook, h.log))
	r.DELETE(constants.DeleteWorkBookPath, gintool.WrapUserHandler(h.DeleteWorkBook, h.log))
}

func (h *WorkBookHandler) CreateWorkBook(c *gin.Context, param *model.CreateWorkBookParam) {
	start := time.Now()
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.Uint64("operator", param.Operator),
		logger.String("title", param.Title),
		logger.Int("task_count", len(param.Tasks)))

	wb, err := h.workBookSvc.CreateWorkBook(ctx, param)
	if err != nil {
		code := errorCode(err)
		gintool.GinErrorResponse(c, code, err)
		h.log.ErrorContext(ctx, "CreateWorkBook failed", logger.Error(err))
		createWorkBookMetrics.observe(start, code, "create_workbook_failed")
		return
	}

	h.log.InfoContext(ctx, "CreateWorkBook success", logger.Uint64("workbook_id", wb.ID))
	success(c, wb)
	createWorkBookMetrics.observe(start, http.StatusOK, "success")
}

func (h *WorkBookHandler) GetWorkBook(c *gin.Context, param *model.GetWorkBookParam) {
	start := time.Now()
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.Uint64("operator", param.Operator),
		logger.Uint64("workbook_id", param.ID))

	wb, err := h.workBookSvc.GetWorkBook(ctx, param.ID, param.Operator)
	if err != nil {
		code := errorCode(err)
		gintool.GinErrorResponse(c, code, err)
		h.log.ErrorContext(ctx, "GetWorkBook failed", logger.Error(err))
		getWorkBookMetrics.observe(start, code, "get_workbook_failed")
		return
	}

	success(c, wb)
	getWorkBookMetrics.observe(start, http.StatusOK, "success")
}

func (h *WorkBookHandler) GetWorkBookList(c *gin.Context, param *model.GetWorkBookListParam) {
	start := time.Now()
	fields := []logger.Field{
		logger.Uint64("operator", param.Operator),
		logger.Int("page", param.Page),
		logger.Int("page_size", param.PageSize),
	}
	if param.AuthorID != nil {
		fields = append(fields, logger.Uint64("author_id", *param.AuthorID))
	}
	if param.WorkBookType != "" {
		fields = append(fields, logger.String("workbook_type", param.WorkBookType))
	}
	if param.IsOfficial != nil {
		fields = append(fields, logger.Bool("is_official", *param.IsOfficial))
	}
	ctx := loggerv2.ContextWithFields(c.Request.Context(), fields...)

	list, total, err := h.workBookSvc.GetWorkBookList(ctx, param)
	if err != nil {
		code := errorCode(err)
		gintool.GinErrorResponse(c, code, err)
		h.log.ErrorContext(ctx, "GetWorkBookList failed", logger.Error(err))
		getWorkBookListMetrics.observe(start, code, "get_workbook_list_failed")
		return
	}

	success(c, &model.GetWorkBookListResponse{
		List:     list,
		Total:    total,
		Page:     param.Page,
		PageSize: param.PageSize,
	})
	getWorkBookListMetrics.observe(start, http.StatusOK, "success")
}

func (h *WorkBookHandler) UpdateWorkBook(c *gin.Context, param *model.UpdateWorkBookParam) {
	start := time.Now()
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.Uint64("operator", param.Operator),
		logger.Uint64("workbook_id", param.ID))

	if err := h.workBookSvc.UpdateWorkBook(ctx, param); err != nil {
		code := errorCode(err)
		gintool.GinErrorResponse(c, code, err)
		h.log.ErrorContext(ctx, "UpdateWorkBook failed", logger.Error(err))
		updateWorkBookMetrics.observe(start, code, "update_workbook_failed")
		return
	}

	success(c, nil)
	updateWorkBookMetrics.observe(start, http.StatusOK, "success")
}

func (h *WorkBookHandler) DeleteWorkBook(c *gin.Context, param *model.DeleteWorkBookParam) {
	start := time.Now()
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.Uint64("operator", param.Operator),
		logger.Uint64("workbook_id", param.ID))

	if err := h.workBookSvc.DeleteWorkBook(ctx, param.ID, param.Operator); err != nil {
		code := errorCode(err)
		gintool.GinErrorResponse(c, code, err)
		h.log.ErrorContext(ctx, "DeleteWorkBook failed", logger.Error(err))
		deleteWorkBookMetrics.observe(start, code, "delete_workbook_failed")
		return
	}

	h.log.InfoContext(ctx, "DeleteWorkBook success")
	success(c, nil)
	deleteWorkBookMetrics.observe(start, http.StatusOK, "success")
}
