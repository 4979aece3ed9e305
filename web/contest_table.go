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

type ContestTableHandler struct {
	contestTableSvc service.ContestTableService
	log             loggerv2.Logger
}

var _ Handler = (*ContestTableHandler)(nil)

func NewContestTableHandler(contestTableSvc service.ContestTableService, log loggerv2.Logger) *ContestTableHandler {
	return &ContestTableHandler{
		contestTableSvc: contestTableSvc,
		log:             log,
	}
}

func (h *ContestTableHandler) Register(r *gin.Engine) {
	r.GET(constants.GetContestTablePath, gintool.WrapUserHandler(h.GetContestTable, h.log))
	r.GET(constants.GetContestTableGroupListPath, gintool.WrapUserHandler(h.GetContestTableGroupList, h.log))
}

func (h *ContestTableHandler) GetContestTable(c *gin.Context, param *model.GetContestTableParam) {
	start := time.Now()
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.Uint64("user_id", param.Operator),
		logger.String("group", param.Group))

	resp, err := h.contestTableSvc.GetContestTable(ctx, param.Operator, param.Group)
	if err != nil {
		code := errorCode(err)
		gintool.GinErrorResponse(c, code, err)
		h.log.ErrorContext(ctx, "GetContestTable failed", logger.Error(err))
		getContestTableMetrics.observe(start, code, "get_contest_table_failed")
		return
	}

	success(c, resp)
	getContestTableMetrics.observe(start, http.StatusOK, "success")
}

func (h *ContestTableHandler) GetContestTableGroupList(c *gin.Context, _ *model.GetContestTableGroupListParam) {
	success(c, &model.GetContestTableGroupListResponse{
		List: h.contestTableSvc.GetGroups(),
	})
}
