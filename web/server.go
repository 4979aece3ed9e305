package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type GinServer struct {
	Engine *gin.Engine
	Addr   string

	srv *http.Server
}

func NewGinServer(engine *gin.Engine, addr string) *GinServer {
	return &GinServer{
		Engine: engine,
		Addr:   addr,
		srv: &http.Server{
			Addr:    addr,
			Handler: engine,
		},
	}
}

func (s *GinServer) Start() error {
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown 等待处理中的请求结束后关闭
func (s *GinServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
