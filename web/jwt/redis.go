package jwt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/to404hanga/task_tracker/constants"
)

// 登出后认证服务写入的 ssid 黑名单
var ssidKey = "users:ssid:%s"

var ErrSessionRevoked = errors.New("token invalid")

type RedisJWTHandler struct {
	client        redis.Cmdable
	signingMethod jwt.SigningMethod
	jwtKey        []byte
}

func NewRedisJWTHandler(client redis.Cmdable, jwtKey []byte) Handler {
	return &RedisJWTHandler{
		client:        client,
		signingMethod: jwt.SigningMethodHS512,
		jwtKey:        jwtKey,
	}
}

var _ Handler = &RedisJWTHandler{}

func (h *RedisJWTHandler) CheckSession(ctx *gin.Context, ssid string) error {
	cnt, err := h.client.Exists(ctx, fmt.Sprintf(ssidKey, ssid)).Result()
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrSessionRevoked
	}
	return nil
}

func (h *RedisJWTHandler) ExtractToken(ctx *gin.Context) string {
	// 优先从 Header 提取 token
	authCode := ctx.GetHeader(constants.HeaderLoginTokenKey)
	if authCode != "" {
		segs := strings.Split(authCode, " ")
		if len(segs) == 2 && segs[0] == "Bearer" {
			return segs[1]
		}
	}

	// 如果Header中没有，尝试从Cookie中提取
	tokenFromCookie, err := ctx.Cookie(constants.HeaderLoginTokenKey)
	if err != nil {
		return ""
	}
	return tokenFromCookie
}

func (h *RedisJWTHandler) ParseToken(tokenStr string) (*UserClaims, error) {
	if tokenStr == "" {
		return nil, fmt.Errorf("token is empty")
	}
	var uc UserClaims
	token, err := jwt.ParseWithClaims(tokenStr, &uc, func(t *jwt.Token) (any, error) {
		return h.jwtKey, nil
	}, jwt.WithValidMethods([]string{h.signingMethod.Alg()}))
	if err != nil {
		return nil, err
	}
	if token == nil || !token.Valid {
		return nil, fmt.Errorf("token invalid")
	}
	return &uc, nil
}

func (h *RedisJWTHandler) JwtKey() []byte {
	return h.jwtKey
}

func (h *RedisJWTHandler) GetUserClaims(ctx *gin.Context) (*UserClaims, error) {
	ucAny, exists := ctx.Get(constants.ContextUserClaimsKey)
	if !exists {
		return nil, fmt.Errorf("user claims not found in context")
	}
	uc, ok := ucAny.(UserClaims)
	if !ok {
		return nil, fmt.Errorf("user claims type assertion error")
	}
	return &uc, nil
}
