package privateleague

import (
	"fmt"

	"github.com/pronofoot/football-prediction-backend/internal/platform/database"
)

// PrimeModule 初始化privateleague模块，迁移数据库表。
func PrimeModule() error {
	if err := database.DB.AutoMigrate(&PrivateLeague{}, &Member{}, &Message{}); err != nil {
		return fmt.Errorf("无法迁移PrivateLeague相关表: %w", err)
	}
	fmt.Println("PrivateLeague数据库表迁移成功。")
	return nil
}
