package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type CORSMiddlewareBuilder struct {
	cfg cors.Config
}

func NewCORSMiddlewareBuilder(allowOrigins, allowMethods, allowHeaders, exposeHeaders []string, allowCredentials bool, maxAge time.Duration) *CORSMiddlewareBuilder {
	return &CORSMiddlewareBuilder{
		cfg: cors.Config{
			AllowOrigins:     allowOrigins,
			AllowMethods:     allowMethods,
			AllowHeaders:     allowHeaders,
			ExposeHeaders:    exposeHeaders,
			AllowCredentials: allowCredentials,
			MaxAge:           maxAge,
		},
	}
}

func (b *CORSMiddlewareBuilder) Build() gin.HandlerFunc {
	// 未配置来源时允许全部来源
	if len(b.cfg.AllowOrigins) == 0 {
		b.cfg.AllowAllOrigins = true
	}
	return cors.New(b.cfg)
}
