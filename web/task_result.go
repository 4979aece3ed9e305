package web

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

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
	"github.com/to404hanga/task_tracker/service/exporter/factory"
)

type TaskResultHandler struct {
	taskResultSvc   service.TaskResultService
	exporterFactory *factory.ExporterFactory
	log             loggerv2.Logger
}

var _ Handler = (*TaskResultHandler)(nil)

func NewTaskResultHandler(taskResultSvc service.TaskResultService, exporterFactory *factory.ExporterFactory, log loggerv2.Logger) *TaskResultHandler {
	return &TaskResultHandler{
		taskResultSvc:   taskResultSvc,
		exporterFactory: exporterFactory,
		log:             log,
	}
}

func (h *TaskResultHandler) Register(r *gin.Engine) {
	r.GET(constants.GetTaskResultListPath, gintool.WrapUserHandler(h.GetTaskResultList, h.log))
	r.GET(constants.GetTaskResultPath, gintool.WrapUserHandler(h.GetTaskResult, h.log))
	r.PUT(constants.UpdateTaskResultPath, gintool.WrapUserHandler(h.UpdateTaskResult, h.log))
	r.GET(constants.ExportTaskResultPath, gintool.WrapUserHandler(h.ExportTaskResult, h.log))
}

func (h *TaskResultHandler) GetTaskResultList(c *gin.Context, param *model.GetTaskResultListParam) {
	start := time.Now()
	ctx := loggerv2.ContextWithFields(c.Request.Context(), logger.Uint64("user_id", param.Operator))

	contestType := contest.ContestType(param.ContestType)
	if contestType != "" && !contestType.Valid() {
		err := fmt.Errorf("%w: %s", service.ErrInvalidContestType, param.ContestType)
		gintool.GinErrorResponse(c, http.StatusBadRequest, err)
		getTaskResultListMetrics.observe(start, http.StatusBadRequest, "invalid_contest_type")
		return
	}

	results, err := h.taskResultSvc.GetTaskResults(ctx, param.Operator)
	if err != nil {
		code := errorCode(err)
		gintool.GinErrorResponse(c, code, err)
		h.log.ErrorContext(ctx, "GetTaskResults failed", logger.Error(err))
		getTaskResultListMetrics.observe(start, code, "get_task_results_failed")
		return
	}
	if contestType != "" {
		results = lo.Filter(results, func(r entity.TaskResult, _ int) bool {
			return contest.Classify(r.ContestID) == contestType
		})
	}

	success(c, &model.GetTaskResultListResponse{
		List:  results,
		Total: len(results),
	})
	getTaskResultListMetrics.observe(start, http.StatusOK, "success")
}

func (h *TaskResultHandler) GetTaskResult(c *gin.Context, param *model.GetTaskResultParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.Uint64("user_id", param.Operator),
		logger.String("contest_id", param.ContestID),
		logger.String("task_id", param.TaskID))

	result, err := h.taskResultSvc.GetTaskResult(ctx, param.Operator, param.ContestID, param.TaskID)
	if err != nil {
		gintool.GinErrorResponse(c, errorCode(err), err)
		h.log.ErrorContext(ctx, "GetTaskResult failed", logger.Error(err))
		return
	}

	success(c, result)
}

func (h *TaskResultHandler) UpdateTaskResult(c *gin.Context, param *model.UpdateTaskResultParam) {
	start := time.Now()
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.Uint64("user_id", param.Operator),
		logger.String("task_id", param.TaskID),
		logger.String("submission_status", param.SubmissionStatus))

	result, err := h.taskResultSvc.UpdateTaskResult(ctx, param.Operator, param.TaskID, param.SubmissionStatus)
	if err != nil {
		code := errorCode(err)
		gintool.GinErrorResponse(c, code, err)
		h.log.ErrorContext(ctx, "UpdateTaskResult failed", logger.Error(err))
		updateTaskResultMetrics.observe(start, code, "update_task_result_failed")
		return
	}

	h.log.InfoContext(ctx, "UpdateTaskResult success")
	success(c, result)
	updateTaskResultMetrics.observe(start, http.StatusOK, "success")
}

func (h *TaskResultHandler) ExportTaskResult(c *gin.Context, param *model.ExportTaskResultParam) {
	start := time.Now()
	exporterType := factory.ExporterType(param.Format)
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.Uint64("user_id", param.Operator),
		logger.String("export_type", string(exporterType)))

	if param.ContestType != "" && !contest.ContestType(param.ContestType).Valid() {
		err := fmt.Errorf("%w: %s", service.ErrInvalidContestType, param.ContestType)
		gintool.GinErrorResponse(c, http.StatusBadRequest, err)
		exportTaskResultMetrics.observe(start, http.StatusBadRequest, "invalid_contest_type")
		return
	}

	exp := h.exporterFactory.GetExporter(exporterType)
	if exp == nil {
		gintool.GinErrorResponse(c, http.StatusBadRequest, fmt.Errorf("unknown exporter type: %s", param.Format))
		h.log.ErrorContext(ctx, "Unknown exporter type")
		exportTaskResultMetrics.observe(start, http.StatusBadRequest, "unknown_exporter_type")
		return
	}

	// 先写入缓冲区, 导出失败时仍能返回 JSON 错误
	var buf bytes.Buffer
	if err := exp.Export(ctx, param.Operator, param.ContestType, &buf); err != nil {
		code := errorCode(err)
		gintool.GinErrorResponse(c, code, err)
		h.log.ErrorContext(ctx, "Export failed", logger.Error(err))
		exportTaskResultMetrics.observe(start, code, "export_failed")
		return
	}

	filename := fmt.Sprintf("task_results_%d_%s%s", param.Operator, time.Now().Format("20060102150405"), factory.ExporterSuffixMap[exporterType])
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, factory.ExporterContentTypeMap[exporterType], buf.Bytes())
	exportTaskResultMetrics.observe(start, http.StatusOK, "success")
}
