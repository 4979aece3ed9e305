package gintool

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/constants"
	"github.com/to404hanga/task_tracker/model"
	"github.com/to404hanga/task_tracker/web/jwt"
)

// GinContextToLoggerContext 将 Gin 上下文转换为 Logger 上下文
func GinContextToLoggerContext(c *gin.Context) context.Context {
	fields := make([]logger.Field, 0, 2)

	if requestID := c.GetHeader(constants.HeaderRequestIDKey); requestID != "" {
		fields = append(fields, logger.String("RequestID", requestID))
	}
	if userID := c.GetHeader(constants.HeaderUserIDKey); userID != "" {
		fields = append(fields, logger.String("UserID", userID))
	}

	return loggerv2.ContextWithFields(c.Request.Context(), fields...)
}

// ExtractOperator 从网关注入的 X-User-ID 提取操作人 ID
func ExtractOperator(c *gin.Context, p model.CommonParamInterface) error {
	userID := c.GetHeader(constants.HeaderUserIDKey)
	if userID == "" {
		return fmt.Errorf("X-User-ID header is required")
	}
	operator, err := strconv.ParseUint(userID, 10, 64)
	if err != nil {
		return fmt.Errorf("X-User-ID header is not a valid uint64, X-User-ID: %s, err: %w", userID, err)
	}
	p.SetOperator(operator)
	return nil
}

// ExtractUserClaims 从登录中间件写入的 claims 提取操作人 ID
func ExtractUserClaims(c *gin.Context, p model.CommonParamInterface) (int, error) {
	claims, exists := c.Get(constants.ContextUserClaimsKey)
	if !exists {
		return http.StatusUnauthorized, fmt.Errorf("user claims not found")
	}
	uc, ok := claims.(jwt.UserClaims)
	if !ok {
		return http.StatusInternalServerError, fmt.Errorf("user claims type assertion failed")
	}
	p.SetOperator(uc.UserID)
	return http.StatusOK, nil
}
