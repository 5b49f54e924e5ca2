package queue

import (
	"fmt"
	"sync"

	"github.com/bellu-mart/internal/config"
	"github.com/bellu-mart/internal/constants"
	"github.com/bellu-mart/internal/logger"

	"github.com/hibiken/asynq"
)

var (
	client     *asynq.Client
	clientOnce sync.Once
	enabled    bool
)

// RedisOpt 根据配置构造 asynq Redis 连接参数
func RedisOpt(cfg config.QueueConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// InitClient 初始化队列客户端，未启用时所有入队调用静默跳过
func InitClient(cfg config.QueueConfig) {
	if !cfg.Enabled {
		logger.Infow("queue_disabled")
		return
	}
	clientOnce.Do(func() {
		client = asynq.NewClient(RedisOpt(cfg))
		enabled = true
		logger.Infow("queue_client_initialized",
			"addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			"db", cfg.DB,
		)
	})
}

// Enabled 队列是否可用
func Enabled() bool {
	return enabled && client != nil
}

// CloseClient 关闭队列客户端
func CloseClient() {
	if client != nil {
		_ = client.Close()
	}
}

// Enqueue 投递任务，队列未启用时直接返回
func Enqueue(task *asynq.Task, opts ...asynq.Option) error {
	if !Enabled() {
		return nil
	}
	opts = append([]asynq.Option{asynq.Queue(constants.QueueDefault)}, opts...)
	info, err := client.Enqueue(task, opts...)
	if err != nil {
		return err
	}
	logger.Debugw("task_enqueued",
		"task_id", info.ID,
		"type", info.Type,
		"queue", info.Queue,
	)
	return nil
}

// EnqueueOrderCreated 投递订单创建任务
func EnqueueOrderCreated(payload OrderCreatedPayload) error {
	task, err := NewOrderCreatedTask(payload)
	if err != nil {
		return err
	}
	return Enqueue(task)
}

// EnqueueOrderStatusChanged 投递订单状态变更任务
func EnqueueOrderStatusChanged(payload OrderStatusChangedPayload) error {
	task, err := NewOrderStatusChangedTask(payload)
	if err != nil {
		return err
	}
	return Enqueue(task)
}
