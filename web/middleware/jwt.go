package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/constants"
	trackerjwt "github.com/to404hanga/task_tracker/web/jwt"
)

type JWTMiddlewareBuilder struct {
	trackerjwt.Handler
	log            loggerv2.Logger
	checkLoginPath []string
}

func NewJWTMiddlewareBuilder(handler trackerjwt.Handler, log loggerv2.Logger, checkLoginPath []string) *JWTMiddlewareBuilder {
	return &JWTMiddlewareBuilder{
		Handler:        handler,
		log:            log,
		checkLoginPath: checkLoginPath,
	}
}

// CheckLogin 校验登录 token, 通过后把 claims 写入上下文
func (m *JWTMiddlewareBuilder) CheckLogin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		path := ctx.Request.URL.Path
		flag := false
		for _, p := range m.checkLoginPath {
			if strings.HasPrefix(path, p) {
				flag = true
				break
			}
		}
		if !flag {
			ctx.Next()
			return
		}

		uc, err := m.ParseToken(m.ExtractToken(ctx))
		if err != nil {
			m.log.ErrorContext(ctx.Request.Context(), "CheckLogin failed", logger.Error(err))
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		if err = m.CheckSession(ctx, uc.Ssid); err != nil {
			m.log.ErrorContext(ctx.Request.Context(), "CheckLogin failed", logger.Error(err))
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		ctx.Set(constants.ContextUserClaimsKey, *uc)
		ctx.Next()
	}
}
