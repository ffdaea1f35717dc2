package startup

import (
	"fmt"

	"github.com/pronofoot/football-prediction-backend/internal/league"
	"github.com/pronofoot/football-prediction-backend/internal/match"
	"github.com/pronofoot/football-prediction-backend/internal/prediction"
	"github.com/pronofoot/football-prediction-backend/internal/privateleague"
	"github.com/pronofoot/football-prediction-backend/internal/team"
	"github.com/pronofoot/football-prediction-backend/internal/user"
)

// InitializeApplication 是应用首次启动时执行的总入口。
// 各模块按外键依赖顺序完成表迁移。
func InitializeApplication() error {
	fmt.Println("开始应用初始化...")

	if err := user.PrimeModule(); err != nil {
		return err
	}
	if err := league.PrimeModule(); err != nil {
		return err
	}
	if err := team.PrimeModule(); err != nil {
		return err
	}
	if err := match.PrimeModule(); err != nil {
		return err
	}
	if err := prediction.PrimeModule(); err != nil {
		return err
	}
	if err := privateleague.PrimeModule(); err != nil {
		return err
	}

	fmt.Println("应用初始化完成！")
	return nil
}
