package constants

// 订单状态常量
const (
	OrderStatusPending        = "pending"
	OrderStatusConfirmed      = "confirmed"
	OrderStatusPreparing      = "preparing"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCancelled      = "cancelled"
)

// OrderStatuses 订单状态全集（按生命周期顺序）
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// 支付方式常量
const (
	PaymentMethodUPI  = "upi"
	PaymentMethodCard = "card"
	PaymentMethodCOD  = "cod"
)

// 库存展示档位常量
const (
	StockTierOut = "out_of_stock"
	StockTierLow = "low_stock"
	StockTierIn  = "in_stock"
)

// LowStockThreshold 低库存档位阈值（库存 1~5 为低库存，6 起为正常）
const LowStockThreshold = 5

// 配置键常量
const (
	ConfigKeyAllowedCategories = "allowed_categories"
	ConfigKeyAllowedPincodes   = "allowed_pincodes"
)

// 配置值类型常量
const (
	ConfigValueKindString     = "string"
	ConfigValueKindStringList = "string_list"
)

// 队列与任务常量
const (
	QueueDefault           = "default"
	TaskOrderCreated       = "order:created"
	TaskOrderStatusChanged = "order:status_changed"
)
