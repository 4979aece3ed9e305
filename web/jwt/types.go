package jwt

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Handler 校验认证服务签发的登录 token
type Handler interface {
	ExtractToken(ctx *gin.Context) string
	ParseToken(tokenStr string) (*UserClaims, error)
	CheckSession(ctx *gin.Context, ssid string) error

	JwtKey() []byte
	GetUserClaims(ctx *gin.Context) (*UserClaims, error)
}

type UserClaims struct {
	jwt.RegisteredClaims
	UserID    uint64
	Ssid      string
	UserAgent string
}
