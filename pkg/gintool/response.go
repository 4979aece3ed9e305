package gintool

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/to404hanga/task_tracker/constants"
)

type Response struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	RequestID string `json:"request_id"`
}

func GinResponse(c *gin.Context, resp *Response) {
	resp.RequestID = c.GetHeader(constants.HeaderRequestIDKey)
	c.JSON(http.StatusOK, resp)
}

// GinErrorResponse 返回失败响应
func GinErrorResponse(c *gin.Context, code int, err error) {
	GinResponse(c, &Response{
		Code:    code,
		Message: err.Error(),
	})
}
