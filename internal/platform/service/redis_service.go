package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"perfect-pic-gallery/internal/config"
	"perfect-pic-gallery/internal/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	redisMu     sync.Mutex
	redisInited bool
	redisClient *redis.Client
)

// GetRedisClient 获取 Redis 客户端；当未启用或不可用时返回 nil。
func GetRedisClient() *redis.Client {
	redisMu.Lock()
	defer redisMu.Unlock()
	if !redisInited {
		redisClient = connectRedis(config.Get().Redis)
		redisInited = true
	}
	return redisClient
}

// SetRedisClient 替换全局客户端，传 nil 表示禁用 Redis
func SetRedisClient(client *redis.Client) {
	redisMu.Lock()
	defer redisMu.Unlock()
	redisClient = client
	redisInited = true
}

// RedisKey 基于配置前缀拼接 Redis 键名。
func RedisKey(parts ...string) string {
	prefix := config.Get().Redis.Prefix
	if prefix == "" {
		prefix = "perfect_pic"
	}
	if len(parts) == 0 {
		return prefix
	}
	return prefix + ":" + strings.Join(parts, ":")
}

func connectRedis(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		logger.L().Warn("Redis 不可用，降级为内存模式", zap.Error(err))
		return nil
	}

	logger.L().Info("Redis 已连接", zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))
	return client
}

// CloseRedisClient 关闭 Redis 客户端连接。
func CloseRedisClient() error {
	redisMu.Lock()
	defer redisMu.Unlock()
	if redisClient == nil {
		return nil
	}
	err := redisClient.Close()
	redisClient = nil
	redisInited = false
	if err != nil {
		return fmt.Errorf("close redis failed: %w", err)
	}
	return nil
}
