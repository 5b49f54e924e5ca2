package service

import "errors"

// 服务层业务错误
var (
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrInvalidSessionID    = errors.New("invalid session id")
	ErrCartEmpty           = errors.New("cart is empty")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidOrderStatus  = errors.New("invalid order status")
	ErrStatusNotAllowed    = errors.New("status transition not allowed")
	ErrInvalidOrderInput   = errors.New("invalid order input")
	ErrOrderTotalMismatch  = errors.New("order total mismatch")
	ErrDuplicateOrder      = errors.New("duplicate order submission")
	ErrConfigNotFound      = errors.New("config not found")
	ErrInvalidConfigValue  = errors.New("invalid config value")
	ErrInvalidPincode      = errors.New("invalid pincode")
	ErrInvalidProductInput = errors.New("invalid product input")
)
