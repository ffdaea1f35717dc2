package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/pronofoot/football-prediction-backend/api"
	"github.com/pronofoot/football-prediction-backend/internal/chat"
	"github.com/pronofoot/football-prediction-backend/internal/platform/config"
	"github.com/pronofoot/football-prediction-backend/internal/platform/database"
	"github.com/pronofoot/football-prediction-backend/internal/platform/health"
	"github.com/pronofoot/football-prediction-backend/internal/platform/shutdown"
	"github.com/pronofoot/football-prediction-backend/internal/platform/startup"
	"github.com/pronofoot/football-prediction-backend/pkg/lifecycle"
	"github.com/pronofoot/football-prediction-backend/pkg/response"
	"github.com/pronofoot/football-prediction-backend/pkg/token"
)

func main() {
	// .env缺失不是错误，本地开发时才用它
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("配置加载失败: %v", err))
	}

	gin.SetMode(cfg.Server.Mode)
	response.SetMode(cfg.Server.Mode)
	token.Configure(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	database.InitDB(cfg.Database)
	database.InitRedis(cfg.Database.Redis)

	if err := startup.InitializeApplication(); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	// 后台服务统一挂在一个生命周期管理器上
	mgr := lifecycle.NewManager()

	healthHandle, err := mgr.NewServiceHandle("redis-health")
	if err != nil {
		panic(err)
	}
	health.StartRedisHealthCheck(healthHandle)

	hubHandle, err := mgr.NewServiceHandle("chat-hub")
	if err != nil {
		panic(err)
	}
	hub := chat.NewHub(hubHandle)
	chatHandler := chat.NewHandler(hub, cfg.Chat.HistorySize)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r, chatHandler)

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	go func() {
		fmt.Printf("服务器已准备就绪，开始监听 %s\n", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic("服务器启动失败: " + err.Error())
		}
	}()

	shutdown.NewCoordinator(mgr).ListenForSignalsAndShutdown(server)
}
