package prediction

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pronofoot/football-prediction-backend/internal/platform/database"
)

// GetByID 按 ID 获取预测，未找到时返回 (nil, nil)。
func GetByID(id uint) (*Prediction, error) {
	var p Prediction
	err := database.DB.First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("查询预测失败: %w", err)
	}
	return &p, nil
}

// GetByUserAndMatch 获取用户对某场比赛的预测，未找到时返回 (nil, nil)。
func GetByUserAndMatch(userID, matchID uint) (*Prediction, error) {
	var p Prediction
	err := database.DB.Where("user_id = ? AND match_id = ?", userID, matchID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("查询预测失败: %w", err)
	}
	return &p, nil
}

// GetByUserWithMatch 获取某用户的所有预测，带比赛上下文，按开球时间降序。
func GetByUserWithMatch(userID uint) ([]WithMatch, error) {
	var rows []WithMatch
	err := database.DB.Model(&Prediction{}).
		Select("predictions.id, predictions.user_id, predictions.match_id, "+
			"predictions.home_score_prediction, predictions.away_score_prediction, predictions.points_earned, "+
			"matches.match_date, matches.status AS match_status, matches.home_score, matches.away_score, "+
			"home_team.name AS home_team_name, away_team.name AS away_team_name, leagues.name AS league_name").
		Joins("JOIN matches ON matches.id = predictions.match_id").
		Joins("JOIN teams home_team ON home_team.id = matches.home_team_id").
		Joins("JOIN teams away_team ON away_team.id = matches.away_team_id").
		Joins("JOIN leagues ON leagues.id = matches.league_id").
		Where("predictions.user_id = ?", userID).
		Order("matches.match_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("查询用户预测失败: %w", err)
	}
	return rows, nil
}

// GetByMatchWithUser 获取某场比赛的所有预测，带用户名。
func GetByMatchWithUser(matchID uint) ([]WithUser, error) {
	var rows []WithUser
	err := database.DB.Model(&Prediction{}).
		Select("predictions.id, predictions.user_id, users.username, predictions.match_id, "+
			"predictions.home_score_prediction, predictions.away_score_prediction, predictions.points_earned").
		Joins("JOIN users ON users.id = predictions.user_id").
		Where("predictions.match_id = ?", matchID).
		Order("predictions.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("查询比赛预测失败: %w", err)
	}
	return rows, nil
}

// GetByMatchTx 在事务中获取某场比赛的所有预测记录，供结算引擎使用。
func GetByMatchTx(tx *gorm.DB, matchID uint) ([]Prediction, error) {
	if tx == nil {
		tx = database.DB
	}
	var rows []Prediction
	if err := tx.Where("match_id = ?", matchID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("查询比赛预测失败: %w", err)
	}
	return rows, nil
}

// Create 创建一条预测。
func Create(p *Prediction) error {
	if err := database.DB.Create(p).Error; err != nil {
		return fmt.Errorf("创建预测失败: %w", err)
	}
	return nil
}

// Update 更新一条预测。
func Update(p *Prediction) error {
	if err := database.DB.Save(p).Error; err != nil {
		return fmt.Errorf("更新预测失败: %w", err)
	}
	return nil
}

// UpdatePointsTx 在事务中写入结算后的得分。
func UpdatePointsTx(tx *gorm.DB, predictionID uint, points int) error {
	if tx == nil {
		tx = database.DB
	}
	err := tx.Model(&Prediction{}).Where("id = ?", predictionID).
		Update("points_earned", points).Error
	if err != nil {
		return fmt.Errorf("更新预测得分失败: %w", err)
	}
	return nil
}

// DeleteByMatchTx 在事务中删除某场比赛的所有预测。
func DeleteByMatchTx(tx *gorm.DB, matchID uint) error {
	if err := tx.Where("match_id = ?", matchID).Delete(&Prediction{}).Error; err != nil {
		return fmt.Errorf("删除比赛预测失败: %w", err)
	}
	return nil
}
