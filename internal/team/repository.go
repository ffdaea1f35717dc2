package team

import (
	"errors"

	"github.com/pronofoot/football-prediction-backend/internal/platform/database"
	"gorm.io/gorm"
)

// GetAll 返回全部球队，按名称排序。
func GetAll() ([]Team, error) {
	var teams []Team
	err := database.DB.Order("name ASC").Find(&teams).Error
	return teams, err
}

// GetByLeague 返回某个联赛的全部球队。
func GetByLeague(leagueID uint) ([]Team, error) {
	var teams []Team
	err := database.DB.Where("league_id = ?", leagueID).Order("name ASC").Find(&teams).Error
	return teams, err
}

// GetByID 按ID查找球队，不存在时返回 (nil, nil)。
func GetByID(id uint) (*Team, error) {
	var t Team
	err := database.DB.First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create 新建一支球队。
func Create(t *Team) error {
	return database.DB.Create(t).Error
}

// Update 全量更新一支球队。
func Update(t *Team) error {
	return database.DB.Save(t).Error
}

// Delete 删除一支球队，返回是否确实删除了行。
func Delete(id uint) (bool, error) {
	result := database.DB.Delete(&Team{}, id)
	return result.RowsAffected > 0, result.Error
}
