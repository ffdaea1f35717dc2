package match

import (
	"fmt"

	"github.com/pronofoot/football-prediction-backend/internal/platform/database"
)

// PrimeModule 初始化match模块，迁移数据库表。
func PrimeModule() error {
	if err := database.DB.AutoMigrate(&Match{}); err != nil {
		return fmt.Errorf("无法迁移Match表: %w", err)
	}
	fmt.Println("Match数据库表迁移成功。")
	return nil
}
