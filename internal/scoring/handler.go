package scoring

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pronofoot/football-prediction-backend/pkg/response"
)

type scoreRequest struct {
	HomeScore *int `json:"home_score" binding:"required,gte=0"`
	AwayScore *int `json:"away_score" binding:"required,gte=0"`
}

// HandleUpdateScore 处理 PUT /api/matches/:id/score（管理员）。
func HandleUpdateScore(c *gin.Context) {
	matchID, ok := matchIDParam(c)
	if !ok {
		return
	}
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效")
		return
	}

	deltas, err := UpdateScore(matchID, *req.HomeScore, *req.AwayScore)
	if err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			response.Fail(c, http.StatusNotFound, err.Error())
			return
		}
		response.ServerError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "比分更新并结算完成", gin.H{"settled_users": len(deltas)})
}

// HandleCalculatePoints 处理 POST /api/matches/:id/calculate-points（管理员）。
// 对已结束的比赛手动重跑结算，正常情况下是无操作。
func HandleCalculatePoints(c *gin.Context) {
	matchID, ok := matchIDParam(c)
	if !ok {
		return
	}
	deltas, err := SettleMatch(matchID)
	if err != nil {
		switch {
		case errors.Is(err, ErrMatchNotFound):
			response.Fail(c, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrMatchNotFinished):
			response.Fail(c, http.StatusBadRequest, err.Error())
		default:
			response.ServerError(c, err)
		}
		return
	}
	response.OK(c, http.StatusOK, "结算完成", gin.H{"settled_users": len(deltas)})
}

// HandleDeleteMatch 处理 DELETE /api/matches/:id（管理员）。
func HandleDeleteMatch(c *gin.Context) {
	matchID, ok := matchIDParam(c)
	if !ok {
		return
	}
	if err := DeleteMatch(matchID); err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			response.Fail(c, http.StatusNotFound, err.Error())
			return
		}
		response.ServerError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "比赛删除成功", nil)
}

func matchIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的比赛ID")
		return 0, false
	}
	return uint(id), true
}
