package prediction

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pronofoot/football-prediction-backend/internal/user"
	"github.com/pronofoot/football-prediction-backend/pkg/response"
)

type predictionRequest struct {
	MatchID             uint `json:"match_id" binding:"required"`
	HomeScorePrediction *int `json:"home_score_prediction" binding:"required,gte=0"`
	AwayScorePrediction *int `json:"away_score_prediction" binding:"required,gte=0"`
}

type updatePredictionRequest struct {
	HomeScorePrediction *int `json:"home_score_prediction" binding:"required,gte=0"`
	AwayScorePrediction *int `json:"away_score_prediction" binding:"required,gte=0"`
}

// HandleCreate 处理 POST /api/predictions。
func HandleCreate(c *gin.Context) {
	var req predictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效")
		return
	}

	userID := user.CurrentUserID(c)
	p, err := CreatePrediction(userID, req.MatchID, *req.HomeScorePrediction, *req.AwayScorePrediction)
	if err != nil {
		switch {
		case errors.Is(err, ErrMatchNotFound):
			response.Fail(c, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrMatchClosed), errors.Is(err, ErrAlreadyPredicted):
			response.Fail(c, http.StatusBadRequest, err.Error())
		default:
			response.ServerError(c, err)
		}
		return
	}
	response.OK(c, http.StatusCreated, "预测提交成功", p)
}

// HandleUpdate 处理 PUT /api/predictions/:id。
func HandleUpdate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的预测ID")
		return
	}
	var req updatePredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效")
		return
	}

	userID := user.CurrentUserID(c)
	p, err := UpdatePrediction(userID, uint(id), *req.HomeScorePrediction, *req.AwayScorePrediction)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Fail(c, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrNotOwner):
			response.Fail(c, http.StatusForbidden, err.Error())
		case errors.Is(err, ErrMatchClosed):
			response.Fail(c, http.StatusBadRequest, err.Error())
		default:
			response.ServerError(c, err)
		}
		return
	}
	response.OK(c, http.StatusOK, "预测更新成功", p)
}

// HandleGetMine 处理 GET /api/predictions/mine。
func HandleGetMine(c *gin.Context) {
	userID := user.CurrentUserID(c)
	rows, err := GetByUserWithMatch(userID)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "", rows)
}

// HandleGetByMatch 处理 GET /api/matches/:id/predictions（管理员）。
func HandleGetByMatch(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的比赛ID")
		return
	}
	rows, err := GetByMatchWithUser(uint(matchID))
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "", rows)
}
