package health

import (
	"context"
	"fmt"
	"time"

	"github.com/pronofoot/football-prediction-backend/internal/platform/database"
	"github.com/pronofoot/football-prediction-backend/pkg/lifecycle"
)

const (
	checkInterval = 5 * time.Second
	pingTimeout   = 2 * time.Second
)

// PerformCheck 执行一次Redis连通性检查并更新健康状态。
func PerformCheck() {
	if database.RDB == nil {
		return
	}
	ctx, cancel := context.WithTimeout(database.Ctx, pingTimeout)
	defer cancel()
	if _, err := database.RDB.Ping(ctx).Result(); err != nil {
		database.SetRedisHealthy(false)
		return
	}
	database.SetRedisHealthy(true)
}

// StartRedisHealthCheck 启动后台Goroutine定期检查Redis，
// 让排行榜缓存在Redis恢复后自动重新生效。收到停机信号后退出。
func StartRedisHealthCheck(handle *lifecycle.Handle) {
	if database.RDB == nil {
		handle.Close()
		return
	}
	fmt.Println("Redis健康检查器已启动。")

	go func() {
		defer handle.Close()
		ticker := time.NewTicker(checkInterval)
		defer ticker.Stop()
		for {
			select {
			case <-handle.Done():
				return
			case <-ticker.C:
				PerformCheck()
			}
		}
	}()
}
