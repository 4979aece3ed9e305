package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/entity"
	"github.com/to404hanga/task_tracker/pkg/gintool"
	"github.com/to404hanga/task_tracker/service"
)

type Handler interface {
	Register(r *gin.Engine)
}

var errPermissionDenied = fmt.Errorf("permission denied: %w", service.ErrForbidden)

// errorCode 业务错误到响应码的映射
func errorCode(err error) int {
	switch {
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, service.ErrTagNotFound),
		errors.Is(err, service.ErrWorkBookNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrContestTableGroupNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrTaskAlreadyExists),
		errors.Is(err, service.ErrTagAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidTaskGrade),
		errors.Is(err, service.ErrInvalidContestType),
		errors.Is(err, service.ErrInvalidSubmissionStatus),
		errors.Is(err, service.ErrInvalidWorkBookTasks):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// adminChecker 校验网关传入的操作人是否为管理员
type adminChecker struct {
	userSvc service.UserService
	log     loggerv2.Logger
}

func (a adminChecker) checkAdmin(c *gin.Context, operator uint64) bool {
	ctx := c.Request.Context()
	role, err := a.userSvc.GetRoleByID(ctx, operator)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			gintool.GinErrorResponse(c, http.StatusForbidden, errPermissionDenied)
			a.log.WarnContext(ctx, "checkAdmin operator not found", logger.Uint64("operator", operator))
			return false
		}
		gintool.GinErrorResponse(c, http.StatusInternalServerError, err)
		a.log.ErrorContext(ctx, "checkAdmin GetRoleByID failed", logger.Error(err))
		return false
	}
	if role != entity.UserRoleAdmin {
		gintool.GinErrorResponse(c, http.StatusForbidden, errPermissionDenied)
		a.log.WarnContext(ctx, "checkAdmin operator is not admin", logger.Uint64("operator", operator))
		return false
	}
	return true
}

func success(c *gin.Context, data any) {
	gintool.GinResponse(c, &gintool.Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}
