package league

import (
	"errors"

	"github.com/pronofoot/football-prediction-backend/internal/platform/database"
	"gorm.io/gorm"
)

// GetAll 返回全部联赛，按名称排序。
func GetAll() ([]League, error) {
	var leagues []League
	err := database.DB.Order("name ASC").Find(&leagues).Error
	return leagues, err
}

// GetActive 返回所有开放预测的联赛。
func GetActive() ([]League, error) {
	var leagues []League
	err := database.DB.Where("active = ?", true).Order("name ASC").Find(&leagues).Error
	return leagues, err
}

// GetByID 按ID查找联赛，不存在时返回 (nil, nil)。
func GetByID(id uint) (*League, error) {
	var l League
	err := database.DB.First(&l, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create 新建一个联赛。
func Create(l *League) error {
	return database.DB.Create(l).Error
}

// Update 全量更新一个联赛。
func Update(l *League) error {
	return database.DB.Save(l).Error
}

// Delete 删除一个联赛，返回是否确实删除了行。
func Delete(id uint) (bool, error) {
	result := database.DB.Delete(&League{}, id)
	return result.RowsAffected > 0, result.Error
}
