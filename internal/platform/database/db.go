package database

import (
	"fmt"
	"log"
	"os"

	"github.com/pronofoot/football-prediction-backend/internal/platform/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB 是全局的GORM实例，供各业务模块使用
var DB *gorm.DB

// InitDB 根据配置初始化数据库连接。
// 开发和测试默认使用SQLite，生产环境配置postgres驱动和DSN。
func InitDB(cfg config.DatabaseConfig) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			LogLevel: logger.Silent, // 生产环境保持Silent
			Colorful: true,
		},
	)

	var err error
	switch cfg.Driver {
	case "postgres":
		DB, err = gorm.Open(postgres.Open(cfg.Postgres.DSN), &gorm.Config{Logger: newLogger})
	default:
		DB, err = gorm.Open(sqlite.Open(cfg.Sqlite.Path), &gorm.Config{Logger: newLogger})
	}

	if err != nil {
		fmt.Println("连接数据库失败", err)
		panic(err)
	}

	fmt.Println("数据库连接成功！")
}
