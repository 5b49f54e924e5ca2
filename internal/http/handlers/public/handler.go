package public

import (
	"github.com/bellu-mart/internal/service"
)

// Handler 前台接口处理器
type Handler struct {
	productSvc *service.ProductService
	cartSvc    *service.CartService
	orderSvc   *service.OrderService
	pincodeSvc *service.PincodeService
}

// NewHandler 创建前台接口处理器
func NewHandler(
	productSvc *service.ProductService,
	cartSvc *service.CartService,
	orderSvc *service.OrderService,
	pincodeSvc *service.PincodeService,
) *Handler {
	return &Handler{
		productSvc: productSvc,
		cartSvc:    cartSvc,
		orderSvc:   orderSvc,
		pincodeSvc: pincodeSvc,
	}
}
