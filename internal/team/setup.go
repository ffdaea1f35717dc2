package team

import (
	"fmt"

	"github.com/pronofoot/football-prediction-backend/internal/platform/database"
)

// PrimeModule 是team模块的初始化入口。
func PrimeModule() error {
	if err := database.DB.AutoMigrate(&Team{}); err != nil {
		return fmt.Errorf("无法迁移team表: %w", err)
	}
	fmt.Println("Team数据库表迁移成功。")
	return nil
}
