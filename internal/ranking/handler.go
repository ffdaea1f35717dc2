package ranking

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pronofoot/football-prediction-backend/pkg/response"
)

// HandleGetRankings 处理 GET /api/rankings。
func HandleGetRankings(c *gin.Context) {
	entries, err := GetRankings()
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "", entries)
}
