package prediction

import "time"

// Prediction 定义了用户对某场比赛的比分预测。
// 同一用户对同一场比赛只能有一条预测，由复合唯一索引保证。
type Prediction struct {
	ID                  uint      `gorm:"primarykey" json:"id"`
	UserID              uint      `gorm:"uniqueIndex:idx_user_match;not null" json:"user_id"`
	MatchID             uint      `gorm:"uniqueIndex:idx_user_match;index;not null" json:"match_id"`
	HomeScorePrediction int       `gorm:"not null" json:"home_score_prediction"`
	AwayScorePrediction int       `gorm:"not null" json:"away_score_prediction"`
	PointsEarned        int       `gorm:"not null;default:0" json:"points_earned"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// WithMatch 是带比赛上下文的预测视图，用于"我的预测"列表。
type WithMatch struct {
	ID                  uint      `json:"id"`
	UserID              uint      `json:"user_id"`
	MatchID             uint      `json:"match_id"`
	HomeScorePrediction int       `json:"home_score_prediction"`
	AwayScorePrediction int       `json:"away_score_prediction"`
	PointsEarned        int       `json:"points_earned"`
	MatchDate           time.Time `json:"match_date"`
	MatchStatus         string    `json:"match_status"`
	HomeScore           *int      `json:"home_score"`
	AwayScore           *int      `json:"away_score"`
	HomeTeamName        string    `json:"home_team_name"`
	AwayTeamName        string    `json:"away_team_name"`
	LeagueName          string    `json:"league_name"`
}

// WithUser 是带用户名的预测视图，用于管理员查看单场比赛的所有预测。
type WithUser struct {
	ID                  uint   `json:"id"`
	UserID              uint   `json:"user_id"`
	Username            string `json:"username"`
	MatchID             uint   `json:"match_id"`
	HomeScorePrediction int    `json:"home_score_prediction"`
	AwayScorePrediction int    `json:"away_score_prediction"`
	PointsEarned        int    `json:"points_earned"`
}
