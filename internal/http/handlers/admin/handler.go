package admin

import (
	"github.com/bellu-mart/internal/service"
)

// Handler 管理端接口处理器
type Handler struct {
	productSvc *service.ProductService
	orderSvc   *service.OrderService
	configSvc  *service.ConfigService
}

// NewHandler 创建管理端接口处理器
func NewHandler(
	productSvc *service.ProductService,
	orderSvc *service.OrderService,
	configSvc *service.ConfigService,
) *Handler {
	return &Handler{
		productSvc: productSvc,
		orderSvc:   orderSvc,
		configSvc:  configSvc,
	}
}
