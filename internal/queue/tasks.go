package queue

import (
	"encoding/json"

	"github.com/bellu-mart/internal/constants"

	"github.com/hibiken/asynq"
)

// OrderCreatedPayload 订单创建任务载荷
type OrderCreatedPayload struct {
	OrderID   uint   `json:"order_id"`
	SessionID string `json:"session_id"`
	Total     string `json:"total"`
	ItemCount int    `json:"item_count"`
}

// OrderStatusChangedPayload 订单状态变更任务载荷
type OrderStatusChangedPayload struct {
	OrderID    uint   `json:"order_id"`
	SessionID  string `json:"session_id"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
}

// NewOrderCreatedTask 构造订单创建任务
func NewOrderCreatedTask(payload OrderCreatedPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(constants.TaskOrderCreated, data), nil
}

// NewOrderStatusChangedTask 构造订单状态变更任务
func NewOrderStatusChangedTask(payload OrderStatusChangedPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(constants.TaskOrderStatusChanged, data), nil
}
