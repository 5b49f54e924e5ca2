package service

import (
	"context"
	"strings"
	"time"

	"github.com/bellu-mart/internal/cache"
	"github.com/bellu-mart/internal/config"
	"github.com/bellu-mart/internal/constants"
	"github.com/bellu-mart/internal/logger"
	"github.com/bellu-mart/internal/models"
	"github.com/bellu-mart/internal/queue"
	"github.com/bellu-mart/internal/repository"

	"github.com/shopspring/decimal"
)

// OrderService 订单服务
type OrderService struct {
	orderRepo repository.OrderRepository
	cartSvc   *CartService
	orderCfg  config.OrderConfig
	delivery  config.DeliveryConfig
}

// NewOrderService 创建订单服务
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartSvc *CartService,
	orderCfg config.OrderConfig,
	delivery config.DeliveryConfig,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		cartSvc:   cartSvc,
		orderCfg:  orderCfg,
		delivery:  delivery,
	}
}

// OrderItemInput 下单条目入参
type OrderItemInput struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
}

// OrderCreateInput 下单入参；items 为空时从会话购物车取货
type OrderCreateInput struct {
	SessionID         string           `json:"session_id"`
	Items             []OrderItemInput `json:"items"`
	Total             string           `json:"total"`
	PaymentMethod     string           `json:"payment_method"`
	DeliveryAddress   models.JSON      `json:"delivery_address"`
	EstimatedDelivery int              `json:"estimated_delivery"`
	IdempotencyKey    string           `json:"idempotency_key"`
}

// validPaymentMethods 支持的支付方式
var validPaymentMethods = map[string]struct{}{
	constants.PaymentMethodUPI:  {},
	constants.PaymentMethodCard: {},
	constants.PaymentMethodCOD:  {},
}

// allowedStatusTransitions 严格模式下允许的状态流转
var allowedStatusTransitions = map[string][]string{
	constants.OrderStatusPending:        {constants.OrderStatusConfirmed, constants.OrderStatusCancelled},
	constants.OrderStatusConfirmed:      {constants.OrderStatusPreparing, constants.OrderStatusCancelled},
	constants.OrderStatusPreparing:      {constants.OrderStatusOutForDelivery, constants.OrderStatusCancelled},
	constants.OrderStatusOutForDelivery: {constants.OrderStatusDelivered, constants.OrderStatusCancelled},
	constants.OrderStatusDelivered:      {},
	constants.OrderStatusCancelled:      {},
}

// IsValidOrderStatus 状态是否在状态全集内
func IsValidOrderStatus(status string) bool {
	for _, s := range constants.OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Create 创建订单：快照条目，记录客户端金额，成功后清空购物车。
// 提供幂等键时重复提交返回首次创建的订单。
func (s *OrderService) Create(ctx context.Context, input OrderCreateInput) (*models.Order, error) {
	sessionID := strings.TrimSpace(input.SessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	paymentMethod := strings.ToLower(strings.TrimSpace(input.PaymentMethod))
	if _, ok := validPaymentMethods[paymentMethod]; !ok {
		return nil, ErrInvalidOrderInput
	}
	if len(input.DeliveryAddress) == 0 {
		return nil, ErrInvalidOrderInput
	}

	idemKey := strings.TrimSpace(input.IdempotencyKey)
	idemTTL := time.Duration(s.orderCfg.IdempotencyTTLSeconds) * time.Second
	if idemKey != "" {
		reserved, err := cache.ReserveOrderKey(ctx, idemKey, idemTTL)
		if err != nil {
			return nil, err
		}
		if !reserved {
			return s.resolveDuplicate(ctx, idemKey)
		}
	}

	order, err := s.buildOrder(sessionID, paymentMethod, input)
	if err != nil {
		if idemKey != "" {
			_ = cache.ReleaseOrderKey(ctx, idemKey)
		}
		return nil, err
	}
	order.IdempotencyKey = idemKey

	if err := s.orderRepo.Create(order); err != nil {
		if idemKey != "" {
			_ = cache.ReleaseOrderKey(ctx, idemKey)
		}
		return nil, err
	}
	if idemKey != "" {
		if err := cache.BindOrderKey(ctx, idemKey, order.ID, idemTTL); err != nil {
			logger.Warnw("order_idempotency_bind_failed",
				"order_id", order.ID,
				"error", err,
			)
		}
	}

	// 下单成功后清空会话购物车；清空失败不影响订单本身
	if err := s.cartSvc.ClearCart(sessionID); err != nil {
		logger.Warnw("cart_clear_after_order_failed",
			"order_id", order.ID,
			"session_id", sessionID,
			"error", err,
		)
	}

	itemCount := 0
	for _, item := range order.Items {
		itemCount += item.Quantity
	}
	if err := queue.EnqueueOrderCreated(queue.OrderCreatedPayload{
		OrderID:   order.ID,
		SessionID: sessionID,
		Total:     order.Total.String(),
		ItemCount: itemCount,
	}); err != nil {
		logger.Warnw("order_created_enqueue_failed", "order_id", order.ID, "error", err)
	}

	logger.Infow("order_created",
		"order_id", order.ID,
		"session_id", sessionID,
		"total", order.Total.String(),
		"payment_method", paymentMethod,
	)
	return order, nil
}

// buildOrder 组装订单快照与金额
func (s *OrderService) buildOrder(sessionID, paymentMethod string, input OrderCreateInput) (*models.Order, error) {
	var items models.OrderItems
	if len(input.Items) > 0 {
		items = make(models.OrderItems, 0, len(input.Items))
		for _, item := range input.Items {
			if item.Quantity <= 0 {
				return nil, ErrInvalidOrderInput
			}
			price, err := models.NewMoneyFromString(item.Price)
			if err != nil || price.IsNegative() {
				return nil, ErrInvalidOrderInput
			}
			items = append(items, models.OrderItemSnapshot{
				ProductID: item.ProductID,
				Name:      strings.TrimSpace(item.Name),
				Brand:     strings.TrimSpace(item.Brand),
				Price:     price,
				Quantity:  item.Quantity,
				Image:     strings.TrimSpace(item.Image),
			})
		}
	} else {
		cart, err := s.cartSvc.GetCart(sessionID)
		if err != nil {
			return nil, err
		}
		if len(cart.Items) == 0 {
			return nil, ErrCartEmpty
		}
		items = make(models.OrderItems, 0, len(cart.Items))
		for _, item := range cart.Items {
			items = append(items, models.OrderItemSnapshot{
				ProductID: item.ProductID,
				Name:      item.Name,
				Brand:     item.Brand,
				Price:     item.Price,
				Quantity:  item.Quantity,
				Image:     item.Image,
			})
		}
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	computed := decimal.Zero
	for _, item := range items {
		computed = computed.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	computedTotal := models.NewMoneyFromDecimal(computed)

	total := computedTotal
	if raw := strings.TrimSpace(input.Total); raw != "" {
		submitted, err := models.NewMoneyFromString(raw)
		if err != nil || submitted.IsNegative() {
			return nil, ErrInvalidOrderInput
		}
		if !submitted.Equal(computedTotal.Decimal) {
			if s.orderCfg.EnforceTotal {
				return nil, ErrOrderTotalMismatch
			}
			// 默认放任：记录客户端提交值，同时告警金额不一致
			logger.Warnw("order_total_mismatch",
				"session_id", sessionID,
				"submitted", submitted.String(),
				"computed", computedTotal.String(),
			)
		}
		total = submitted
	}

	estimated := input.EstimatedDelivery
	if estimated <= 0 {
		estimated = s.delivery.EstimatedMinutes
	}

	return &models.Order{
		SessionID:         sessionID,
		Items:             items,
		Total:             total,
		PaymentMethod:     paymentMethod,
		DeliveryAddress:   input.DeliveryAddress,
		Status:            constants.OrderStatusPending,
		EstimatedDelivery: estimated,
	}, nil
}

// resolveDuplicate 幂等键已占用时查回已创建订单
func (s *OrderService) resolveDuplicate(ctx context.Context, idemKey string) (*models.Order, error) {
	orderID, err := cache.LookupOrderKey(ctx, idemKey)
	if err != nil {
		return nil, err
	}
	if orderID > 0 {
		order, err := s.orderRepo.GetByID(orderID)
		if err != nil {
			return nil, err
		}
		if order != nil {
			return order, nil
		}
	}
	// 键被占用但订单尚未绑定（并发提交窗口内）
	order, err := s.orderRepo.GetByIdempotencyKey(idemKey)
	if err != nil {
		return nil, err
	}
	if order != nil {
		return order, nil
	}
	return nil, ErrDuplicateOrder
}

// Get 获取单个订单
func (s *OrderService) Get(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListBySession 获取会话订单（新到旧）
func (s *OrderService) ListBySession(sessionID string) ([]models.Order, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	return s.orderRepo.ListBySession(sessionID)
}

// ListAdmin 管理端订单查询
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.Status != "" && !IsValidOrderStatus(filter.Status) {
		return nil, 0, ErrInvalidOrderStatus
	}
	return s.orderRepo.ListAdmin(filter)
}

// UpdateStatus 覆写订单状态。默认接受全集内任意目标状态；
// 开启严格模式后按生命周期流转校验。
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	status = strings.TrimSpace(status)
	if !IsValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status == status {
		return order, nil
	}
	if s.orderCfg.StrictStatusTransitions && !transitionAllowed(order.Status, status) {
		return nil, ErrStatusNotAllowed
	}

	fromStatus := order.Status
	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status

	if err := queue.EnqueueOrderStatusChanged(queue.OrderStatusChangedPayload{
		OrderID:    order.ID,
		SessionID:  order.SessionID,
		FromStatus: fromStatus,
		ToStatus:   status,
	}); err != nil {
		logger.Warnw("order_status_enqueue_failed", "order_id", order.ID, "error", err)
	}

	logger.Infow("order_status_updated",
		"order_id", order.ID,
		"from", fromStatus,
		"to", status,
	)
	return order, nil
}

// transitionAllowed 严格模式流转判定
func transitionAllowed(from, to string) bool {
	for _, next := range allowedStatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
