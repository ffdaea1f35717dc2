package user

import (
	"errors"

	"github.com/pronofoot/football-prediction-backend/internal/platform/database"
	"gorm.io/gorm"
)

// GetByUsername 按用户名查找用户，不存在时返回 (nil, nil)。
func GetByUsername(username string) (*User, error) {
	var u User
	err := database.DB.Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID 按ID查找用户，不存在时返回 (nil, nil)。
func GetByID(id uint) (*User, error) {
	var u User
	err := database.DB.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// AddPoints 给用户的全站积分加上delta（可为负，用于比赛删除时的回滚）。
// 使用表达式更新，避免读-改-写竞争。
func AddPoints(tx *gorm.DB, userID uint, delta int) error {
	if tx == nil {
		tx = database.DB
	}
	return tx.Model(&User{}).Where("id = ?", userID).
		Update("points", gorm.Expr("points + ?", delta)).Error
}

// ListByPoints 按积分降序返回用户，用于管理后台。
func ListByPoints(limit, offset int) ([]User, error) {
	var users []User
	err := database.DB.Order("points DESC").Limit(limit).Offset(offset).Find(&users).Error
	return users, err
}
