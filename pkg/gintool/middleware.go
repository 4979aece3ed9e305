package gintool

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/to404hanga/task_tracker/constants"
)

// ContextMiddleware 补齐请求 ID, 并把请求字段写入日志上下文
func ContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderRequestIDKey)
		if requestID == "" {
			requestID = uuid.NewString()
			c.Request.Header.Set(constants.HeaderRequestIDKey, requestID)
		}
		c.Header(constants.HeaderRequestIDKey, requestID)
		c.Header(constants.HeaderProxyByKey, constants.GatewayServiceName)

		c.Request = c.Request.WithContext(GinContextToLoggerContext(c))
		c.Next()
	}
}
