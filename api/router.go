package api

import (
	"github.com/gin-gonic/gin"

	"github.com/pronofoot/football-prediction-backend/internal/chat"
	"github.com/pronofoot/football-prediction-backend/internal/league"
	"github.com/pronofoot/football-prediction-backend/internal/match"
	"github.com/pronofoot/football-prediction-backend/internal/prediction"
	"github.com/pronofoot/football-prediction-backend/internal/privateleague"
	"github.com/pronofoot/football-prediction-backend/internal/ranking"
	"github.com/pronofoot/football-prediction-backend/internal/scoring"
	"github.com/pronofoot/football-prediction-backend/internal/team"
	"github.com/pronofoot/football-prediction-backend/internal/user"
)

// SetupRoutes 注册项目的所有API路由。
func SetupRoutes(router *gin.Engine, chatHandler *chat.Handler) {
	api := router.Group("/api")
	{
		// 认证相关的路由
		auth := api.Group("/auth")
		{
			auth.POST("/register", user.HandleRegister)
			auth.POST("/login", user.HandleLogin)
			auth.GET("/me", user.RequireAuth(), user.HandleMe)
		}

		// 用户管理（管理员）
		api.GET("/users", user.RequireAuth(), user.RequireAdmin(), user.HandleListUsers)

		// 联赛与球队的参考数据
		leagues := api.Group("/leagues")
		{
			leagues.GET("", league.HandleGetAll)
			leagues.GET("/active", league.HandleGetActive)
			leagues.GET("/:id", league.HandleGetByID)
			leagues.GET("/:id/teams", team.HandleGetByLeague)
			leagues.GET("/:id/matches", match.HandleGetByLeague)
			leagues.GET("/:id/rounds", match.HandleGetRounds)
			leagues.POST("", user.RequireAuth(), user.RequireAdmin(), league.HandleCreate)
			leagues.PUT("/:id", user.RequireAuth(), user.RequireAdmin(), league.HandleUpdate)
			leagues.DELETE("/:id", user.RequireAuth(), user.RequireAdmin(), league.HandleDelete)
		}

		teams := api.Group("/teams")
		{
			teams.GET("", team.HandleGetAll)
			teams.GET("/:id", team.HandleGetByID)
			teams.POST("", user.RequireAuth(), user.RequireAdmin(), team.HandleCreate)
			teams.PUT("/:id", user.RequireAuth(), user.RequireAdmin(), team.HandleUpdate)
			teams.DELETE("/:id", user.RequireAuth(), user.RequireAdmin(), team.HandleDelete)
		}

		// 比赛：读开放，写和结算是管理员操作
		matches := api.Group("/matches")
		{
			matches.GET("", match.HandleGetAll)
			matches.GET("/upcoming", match.HandleGetUpcoming)
			matches.GET("/:id", match.HandleGetByID)
			matches.POST("", user.RequireAuth(), user.RequireAdmin(), match.HandleCreate)
			matches.PUT("/:id", user.RequireAuth(), user.RequireAdmin(), match.HandleUpdate)
			matches.PUT("/:id/score", user.RequireAuth(), user.RequireAdmin(), scoring.HandleUpdateScore)
			matches.POST("/:id/calculate-points", user.RequireAuth(), user.RequireAdmin(), scoring.HandleCalculatePoints)
			matches.DELETE("/:id", user.RequireAuth(), user.RequireAdmin(), scoring.HandleDeleteMatch)
			matches.GET("/:id/predictions", user.RequireAuth(), user.RequireAdmin(), prediction.HandleGetByMatch)
		}

		// 预测
		predictions := api.Group("/predictions", user.RequireAuth())
		{
			predictions.POST("", prediction.HandleCreate)
			predictions.PUT("/:id", prediction.HandleUpdate)
			predictions.GET("/mine", prediction.HandleGetMine)
		}

		// 私人联赛
		privateLeagues := api.Group("/private-leagues", user.RequireAuth())
		{
			privateLeagues.POST("", privateleague.HandleCreate)
			privateLeagues.POST("/join", privateleague.HandleJoin)
			privateLeagues.GET("", privateleague.HandleGetMine)
			privateLeagues.GET("/:id", privateleague.HandleGetDetail)
			privateLeagues.POST("/:id/leave", privateleague.HandleLeave)
			privateLeagues.DELETE("/:id", privateleague.HandleDelete)
			privateLeagues.POST("/:id/sync", privateleague.HandleSync)
		}

		// 排行榜
		api.GET("/rankings", ranking.HandleGetRankings)
	}

	// WebSocket聊天室，认证在处理器内部的协议升级前完成
	router.GET("/ws", chatHandler.HandleGlobal)
	router.GET("/ws/leagues/:id", chatHandler.HandleLeague)
}
