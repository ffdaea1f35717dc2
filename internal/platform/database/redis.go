package database

import (
	"context"
	"fmt"
	"sync"

	"github.com/pronofoot/football-prediction-backend/internal/platform/config"
	"github.com/redis/go-redis/v9"
)

// RDB 是全局的Redis客户端实例。Redis在本项目中只做缓存，
// 不可用时所有读路径都会退回SQL，因此连接失败不阻止启动。
var RDB *redis.Client

// Ctx 是Redis操作使用的全局上下文
var Ctx = context.Background()

var redisStatus struct {
	mu      sync.RWMutex
	healthy bool
}

// InitRedis 初始化与Redis的连接并做一次连通性检查。
func InitRedis(cfg config.RedisConfig) {
	if !cfg.Enabled {
		fmt.Println("Redis未启用，排行榜缓存关闭。")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if _, err := RDB.Ping(Ctx).Result(); err != nil {
		fmt.Printf("无法连接到Redis: %v，将在无缓存模式下运行。\n", err)
		SetRedisHealthy(false)
		return
	}

	SetRedisHealthy(true)
	fmt.Println("Redis 连接成功！")
}

// IsRedisHealthy 返回当前Redis是否可用。
func IsRedisHealthy() bool {
	redisStatus.mu.RLock()
	defer redisStatus.mu.RUnlock()
	return RDB != nil && redisStatus.healthy
}

// SetRedisHealthy 线程安全地更新Redis的健康状态。
// 缓存读写失败的调用方负责降级，并通过这里报告状态变化。
func SetRedisHealthy(healthy bool) {
	redisStatus.mu.Lock()
	defer redisStatus.mu.Unlock()
	if redisStatus.healthy != healthy {
		if healthy {
			fmt.Println("Redis状态已更新为 [可用]")
		} else {
			fmt.Println("Redis状态已更新为 [不可用]")
		}
	}
	redisStatus.healthy = healthy
}
