package prediction

import (
	"fmt"

	"github.com/pronofoot/football-prediction-backend/internal/platform/database"
)

// PrimeModule 初始化prediction模块，迁移数据库表。
func PrimeModule() error {
	if err := database.DB.AutoMigrate(&Prediction{}); err != nil {
		return fmt.Errorf("无法迁移Prediction表: %w", err)
	}
	fmt.Println("Prediction数据库表迁移成功。")
	return nil
}
