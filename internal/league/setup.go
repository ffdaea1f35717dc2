package league

import (
	"fmt"

	"github.com/pronofoot/football-prediction-backend/internal/platform/database"
)

// PrimeModule 是league模块的初始化入口。
func PrimeModule() error {
	if err := database.DB.AutoMigrate(&League{}); err != nil {
		return fmt.Errorf("无法迁移league表: %w", err)
	}
	fmt.Println("League数据库表迁移成功。")
	return nil
}
