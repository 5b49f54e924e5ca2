package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReserveOrderKey 抢占下单幂等键；返回是否抢占成功。
// 键已被占用时返回 false，调用方应复用已创建的订单。
func ReserveOrderKey(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if !Enabled() {
		return true, nil
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return true, nil
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return redisClient.SetNX(ctx, idempotencyKey(key), "0", ttl).Result()
}

// BindOrderKey 将幂等键绑定到已创建订单
func BindOrderKey(ctx context.Context, key string, orderID uint, ttl time.Duration) error {
	if !Enabled() {
		return nil
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return redisClient.Set(ctx, idempotencyKey(key), strconv.FormatUint(uint64(orderID), 10), ttl).Err()
}

// LookupOrderKey 查询幂等键绑定的订单 ID；未绑定返回 0。
func LookupOrderKey(ctx context.Context, key string) (uint, error) {
	if !Enabled() {
		return 0, nil
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return 0, nil
	}
	val, err := redisClient.Get(ctx, idempotencyKey(key)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(strings.TrimSpace(val), 10, 64)
	if err != nil {
		return 0, nil
	}
	return uint(id), nil
}

// ReleaseOrderKey 释放幂等键（下单失败后回滚占用）
func ReleaseOrderKey(ctx context.Context, key string) error {
	if !Enabled() {
		return nil
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return nil
	}
	return redisClient.Del(ctx, idempotencyKey(key)).Err()
}

func idempotencyKey(key string) string {
	return fmt.Sprintf("%s:order:idem:%s", Prefix(), key)
}
