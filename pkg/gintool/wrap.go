package gintool

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/model"
)

// Param 请求参数, 以结构体指针实现 CommonParamInterface
type Param[T any] interface {
	*T
	model.CommonParamInterface
}

// WrapHandler 包装处理函数, 操作人来自网关注入的 X-User-ID
func WrapHandler[T any, PT Param[T]](h func(c *gin.Context, param PT), log loggerv2.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		param := PT(new(T))
		if !bindParam(c, param, "WrapHandler", log) {
			return
		}

		if err := ExtractOperator(c, param); err != nil {
			GinErrorResponse(c, http.StatusBadRequest, err)
			log.ErrorContext(c.Request.Context(), "WrapHandler ExtractOperator failed", logger.Error(err))
			return
		}

		h(c, param)
	}
}

// WrapUserHandler 包装处理函数, 操作人来自登录 token 中的用户
func WrapUserHandler[T any, PT Param[T]](h func(c *gin.Context, param PT), log loggerv2.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		param := PT(new(T))
		if !bindParam(c, param, "WrapUserHandler", log) {
			return
		}

		if code, err := ExtractUserClaims(c, param); err != nil {
			GinErrorResponse(c, code, err)
			log.ErrorContext(c.Request.Context(), "WrapUserHandler ExtractUserClaims failed", logger.Error(err))
			return
		}

		h(c, param)
	}
}

// bindParam 依次绑定 uri, header, query, json, 最后按 binding 标签校验
func bindParam(c *gin.Context, param any, name string, log loggerv2.Logger) bool {
	// 1) URI
	if len(c.Params) > 0 {
		if err := c.ShouldBindUri(param); err != nil {
			GinErrorResponse(c, http.StatusBadRequest, err)
			log.ErrorContext(c.Request.Context(), name+" bind uri failed", logger.Error(err))
			return false
		}
	}

	// 2) Header
	if err := c.ShouldBindHeader(param); err != nil {
		GinErrorResponse(c, http.StatusBadRequest, err)
		log.ErrorContext(c.Request.Context(), name+" bind header failed", logger.Error(err))
		return false
	}

	// 3) Query/Form
	if c.Request.URL != nil && c.Request.URL.RawQuery != "" {
		if err := c.ShouldBindQuery(param); err != nil {
			GinErrorResponse(c, http.StatusBadRequest, err)
			log.ErrorContext(c.Request.Context(), name+" bind query failed", logger.Error(err))
			return false
		}
	}

	// 4) JSON, 没有请求体时跳过
	if hasBody(c.Request) {
		if err := c.ShouldBindJSON(param); err != nil {
			GinErrorResponse(c, http.StatusBadRequest, err)
			log.ErrorContext(c.Request.Context(), name+" bind json failed", logger.Error(err))
			return false
		}
	}

	if err := Validate(param); err != nil {
		GinErrorResponse(c, http.StatusBadRequest, err)
		log.ErrorContext(c.Request.Context(), name+" validate failed", logger.Error(err))
		return false
	}
	return true
}

func hasBody(r *http.Request) bool {
	return r.Body != nil && r.Body != http.NoBody && r.ContentLength != 0
}
