package match

import "time"

// 比赛状态机。得分更新路径只会把 scheduled 单向推进到 finished；
// in_progress 在状态机中保留席位，但当前没有任何迁移会进入它。
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
)

// Match 定义了比赛的持久化模型。
// HomeScore/AwayScore 必须一起写入，且只在状态到达 finished 时存在。
type Match struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	LeagueID   uint      `gorm:"index;not null" json:"league_id"`
	HomeTeamID uint      `gorm:"not null" json:"home_team_id"`
	AwayTeamID uint      `gorm:"not null" json:"away_team_id"`
	MatchDate  time.Time `gorm:"index;not null" json:"match_date"`
	Status     string    `gorm:"size:15;not null;default:scheduled" json:"status"`
	HomeScore  *int      `json:"home_score"`
	AwayScore  *int      `json:"away_score"`
	Round      *string   `gorm:"size:50" json:"round"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// WithTeams 是对外展示用的比赛视图，带球队和联赛名称。
type WithTeams struct {
	ID           uint      `json:"id"`
	LeagueID     uint      `json:"league_id"`
	HomeTeamID   uint      `json:"home_team_id"`
	AwayTeamID   uint      `json:"away_team_id"`
	MatchDate    time.Time `json:"match_date"`
	Status       string    `json:"status"`
	HomeScore    *int      `json:"home_score"`
	AwayScore    *int      `json:"away_score"`
	Round        *string   `json:"round"`
	HomeTeamName string    `json:"home_team_name"`
	AwayTeamName string    `json:"away_team_name"`
	LeagueName   string    `json:"league_name"`
}
