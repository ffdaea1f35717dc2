package match

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pronofoot/football-prediction-backend/internal/platform/database"
)

// withTeamsQuery 返回带球队/联赛名称的基础查询。
//列名全部显式列出，避免 matches.* 与别名列的扫描歧义。
func withTeamsQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&Match{}).
		Select("matches.id, matches.league_id, matches.home_team_id, matches.away_team_id, " +
			"matches.match_date, matches.status, matches.home_score, matches.away_score, matches.round, " +
			"home_team.name AS home_team_name, away_team.name AS away_team_name, leagues.name AS league_name").
		Joins("JOIN teams home_team ON home_team.id = matches.home_team_id").
		Joins("JOIN teams away_team ON away_team.id = matches.away_team_id").
		Joins("JOIN leagues ON leagues.id = matches.league_id")
}

// GetAllWithTeams 获取所有比赛（按开球时间升序）。
func GetAllWithTeams() ([]WithTeams, error) {
	var rows []WithTeams
	if err := withTeamsQuery(database.DB).
		Order("matches.match_date ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("查询比赛列表失败: %w", err)
	}
	return rows, nil
}

// GetByLeagueWithTeams 获取指定联赛的所有比赛。
func GetByLeagueWithTeams(leagueID uint) ([]WithTeams, error) {
	var rows []WithTeams
	if err := withTeamsQuery(database.DB).
		Where("matches.league_id = ?", leagueID).
		Order("matches.match_date ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("查询联赛比赛失败: %w", err)
	}
	return rows, nil
}

// GetUpcomingWithTeams 获取未开始的比赛，可按联赛和轮次过滤。
func GetUpcomingWithTeams(leagueID *uint, round *string) ([]WithTeams, error) {
	query := withTeamsQuery(database.DB).Where("matches.status = ?", StatusScheduled)
	if leagueID != nil {
		query = query.Where("matches.league_id = ?", *leagueID)
	}
	if round != nil {
		query = query.Where("matches.round = ?", *round)
	}
	var rows []WithTeams
	if err := query.Order("matches.match_date ASC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("查询未开始比赛失败: %w", err)
	}
	return rows, nil
}

// GetByIDWithTeams 按 ID 获取比赛视图，未找到时返回 (nil, nil)。
func GetByIDWithTeams(id uint) (*WithTeams, error) {
	var row WithTeams
	err := withTeamsQuery(database.DB).Where("matches.id = ?", id).Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("查询比赛失败: %w", err)
	}
	if row.ID == 0 {
		return nil, nil
	}
	return &row, nil
}

// GetByID 按 ID 获取比赛记录，未找到时返回 (nil, nil)。
func GetByID(id uint) (*Match, error) {
	var m Match
	err := database.DB.First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("查询比赛失败: %w", err)
	}
	return &m, nil
}

// GetRoundsByLeague 获取联赛中出现过的轮次去重列表。
func GetRoundsByLeague(leagueID uint) ([]string, error) {
	var rounds []string
	err := database.DB.Model(&Match{}).
		Where("league_id = ? AND round IS NOT NULL", leagueID).
		Distinct("round").
		Order("round ASC").
		Pluck("round", &rounds).Error
	if err != nil {
		return nil, fmt.Errorf("查询联赛轮次失败: %w", err)
	}
	return rounds, nil
}

// Create 创建一场新比赛。
func Create(m *Match) error {
	if err := database.DB.Create(m).Error; err != nil {
		return fmt.Errorf("创建比赛失败: %w", err)
	}
	return nil
}

// Update 全量更新比赛记录。
func Update(m *Match) error {
	if err := database.DB.Save(m).Error; err != nil {
		return fmt.Errorf("更新比赛失败: %w", err)
	}
	return nil
}

// FinishWithScore 在一条 UPDATE 中写入比分并把状态推进到 finished。
// tx 为 nil 时使用默认连接。
func FinishWithScore(tx *gorm.DB, id uint, homeScore, awayScore int) error {
	if tx == nil {
		tx = database.DB
	}
	err := tx.Model(&Match{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"home_score": homeScore,
			"away_score": awayScore,
			"status":     StatusFinished,
		}).Error
	if err != nil {
		return fmt.Errorf("更新比分失败: %w", err)
	}
	return nil
}

// DeleteTx 在事务中删除比赛记录本身（关联数据由调用方先行清理）。
func DeleteTx(tx *gorm.DB, id uint) error {
	if err := tx.Delete(&Match{}, id).Error; err != nil {
		return fmt.Errorf("删除比赛失败: %w", err)
	}
	return nil
}
