package ranking

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/pronofoot/football-prediction-backend/internal/platform/database"
)

// Entry 是总排行榜的一行。统计口径只包含已结束比赛的预测。
type Entry struct {
	UserID           uint   `json:"user_id"`
	Username         string `json:"username"`
	Points           int    `json:"points"`
	TotalPredictions int    `json:"total_predictions"`
	ExactScores      int    `json:"exact_scores"`
	CorrectResults   int    `json:"correct_results"`
	WrongPredictions int    `json:"wrong_predictions"`
}

const (
	cacheKey = "rankings:global"
	cacheTTL = time.Minute
)

// GetRankings 获取总排行榜，按积分降序、全中场次降序。
// Redis 可用时走一分钟缓存，任何缓存故障都静默回落到数据库。
func GetRankings() ([]Entry, error) {
	if entries, ok := fromCache(); ok {
		return entries, nil
	}

	entries, err := queryRankings()
	if err != nil {
		return nil, err
	}
	toCache(entries)
	return entries, nil
}

func queryRankings() ([]Entry, error) {
	var entries []Entry
	err := database.DB.Raw(`
		SELECT users.id AS user_id,
		       users.username,
		       users.points,
		       COUNT(p.id) AS total_predictions,
		       COALESCE(SUM(CASE WHEN p.points_earned = 3 THEN 1 ELSE 0 END), 0) AS exact_scores,
		       COALESCE(SUM(CASE WHEN p.points_earned = 1 THEN 1 ELSE 0 END), 0) AS correct_results,
		       COALESCE(SUM(CASE WHEN p.points_earned = 0 THEN 1 ELSE 0 END), 0) AS wrong_predictions
		FROM users
		LEFT JOIN predictions p
		       ON p.user_id = users.id
		      AND p.match_id IN (SELECT id FROM matches WHERE status = 'finished')
		GROUP BY users.id, users.username, users.points
		ORDER BY users.points DESC, exact_scores DESC, users.username ASC`).
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("查询排行榜失败: %w", err)
	}
	return entries, nil
}

func fromCache() ([]Entry, bool) {
	if !database.IsRedisHealthy() {
		return nil, false
	}
	raw, err := database.RDB.Get(database.Ctx, cacheKey).Result()
	if err != nil {
		return nil, false
	}
	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Printf("排行榜缓存反序列化失败: %v", err)
		return nil, false
	}
	return entries, true
}

func toCache(entries []Entry) {
	if !database.IsRedisHealthy() {
		return
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := database.RDB.Set(database.Ctx, cacheKey, raw, cacheTTL).Err(); err != nil {
		log.Printf("排行榜写入缓存失败: %v", err)
	}
}

// Invalidate 清除排行榜缓存，结算后调用可让新积分立即可见。
func Invalidate() {
	if !database.IsRedisHealthy() {
		return
	}
	if err := database.RDB.Del(database.Ctx, cacheKey).Err(); err != nil {
		log.Printf("排行榜缓存清除失败: %v", err)
	}
}
