package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bellu-mart/internal/config"
	"github.com/bellu-mart/internal/constants"
	"github.com/bellu-mart/internal/logger"
	"github.com/bellu-mart/internal/queue"

	"github.com/hibiken/asynq"
)

// Worker 异步任务消费端
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

// New 创建任务消费端
func New(cfg config.QueueConfig) *Worker {
	queues := cfg.Queues
	if len(queues) == 0 {
		queues = map[string]int{constants.QueueDefault: 10}
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	server := asynq.NewServer(
		queue.RedisOpt(cfg),
		asynq.Config{
			Concurrency: concurrency,
			Queues:      queues,
			Logger:      asynqLogger{},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(constants.TaskOrderCreated, handleOrderCreated)
	mux.HandleFunc(constants.TaskOrderStatusChanged, handleOrderStatusChanged)

	return &Worker{server: server, mux: mux}
}

// Name 服务名称
func (w *Worker) Name() string {
	return "worker"
}

// Start 启动消费循环，阻塞直到 Shutdown
func (w *Worker) Start(ctx context.Context) error {
	logger.Infow("worker_starting")
	return w.server.Run(w.mux)
}

// Stop 优雅停止消费
func (w *Worker) Stop(ctx context.Context) error {
	w.server.Shutdown()
	logger.Infow("worker_stopped")
	return nil
}

// handleOrderCreated 处理订单创建通知（模拟下发确认消息）
func handleOrderCreated(ctx context.Context, t *asynq.Task) error {
	var payload queue.OrderCreatedPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("order created payload: %w", err)
	}
	logger.Infow("order_confirmation_notified",
		"order_id", payload.OrderID,
		"session_id", payload.SessionID,
		"total", payload.Total,
		"item_count", payload.ItemCount,
	)
	return nil
}

// handleOrderStatusChanged 处理订单状态变更通知
func handleOrderStatusChanged(ctx context.Context, t *asynq.Task) error {
	var payload queue.OrderStatusChangedPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("order status payload: %w", err)
	}
	logger.Infow("order_status_notified",
		"order_id", payload.OrderID,
		"session_id", payload.SessionID,
		"from", payload.FromStatus,
		"to", payload.ToStatus,
	)
	return nil
}

// asynqLogger 把 asynq 内部日志桥接到 zap
type asynqLogger struct{}

func (asynqLogger) Debug(args ...interface{}) { logger.S().Debug(args...) }
func (asynqLogger) Info(args ...interface{})  { logger.S().Info(args...) }
func (asynqLogger) Warn(args ...interface{})  { logger.S().Warn(args...) }
func (asynqLogger) Error(args ...interface{}) { logger.S().Error(args...) }
func (asynqLogger) Fatal(args ...interface{}) { logger.S().Fatal(args...) }
