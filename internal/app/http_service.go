package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/bellu-mart/internal/logger"
)

// APIService 门店 API 的 HTTP 服务封装
type APIService struct {
	addr   string
	server *http.Server
}

// NewAPIService 创建门店 API 服务
func NewAPIService(addr string, handler http.Handler) *APIService {
	return &APIService{
		addr: addr,
		server: &http.Server{
			Addr:    addr,
			Handler: handler,
		},
	}
}

// Name 服务名称
func (s *APIService) Name() string {
	return "api"
}

// Start 监听并处理请求，阻塞直到服务关闭
func (s *APIService) Start(ctx context.Context) error {
	if s == nil || s.server == nil {
		return errors.New("api server not initialized")
	}
	logger.Infow("api_listen", "addr", s.addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop 优雅停机，等待在途请求完成
func (s *APIService) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	logger.Infow("api_shutdown", "addr", s.addr)
	return s.server.Shutdown(ctx)
}
