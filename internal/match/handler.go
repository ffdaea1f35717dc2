package match

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pronofoot/football-prediction-backend/internal/league"
	"github.com/pronofoot/football-prediction-backend/internal/team"
	"github.com/pronofoot/football-prediction-backend/pkg/response"
)

type createRequest struct {
	LeagueID   uint    `json:"league_id" binding:"required"`
	HomeTeamID uint    `json:"home_team_id" binding:"required"`
	AwayTeamID uint    `json:"away_team_id" binding:"required"`
	MatchDate  string  `json:"match_date" binding:"required"`
	Round      *string `json:"round"`
}

type updateRequest struct {
	LeagueID   *uint   `json:"league_id"`
	HomeTeamID *uint   `json:"home_team_id"`
	AwayTeamID *uint   `json:"away_team_id"`
	MatchDate  *string `json:"match_date"`
	Round      *string `json:"round"`
}

// HandleGetAll 处理 GET /api/matches。
func HandleGetAll(c *gin.Context) {
	matches, err := GetAllWithTeams()
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "", matches)
}

// HandleGetUpcoming 处理 GET /api/matches/upcoming，支持 league_id 和 round 过滤。
func HandleGetUpcoming(c *gin.Context) {
	var leagueID *uint
	var round *string
	if raw := c.Query("league_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, "无效的联赛ID")
			return
		}
		id := uint(parsed)
		leagueID = &id
	}
	if raw := c.Query("round"); raw != "" {
		round = &raw
	}

	matches, err := GetUpcomingWithTeams(leagueID, round)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "", matches)
}

// HandleGetByID 处理 GET /api/matches/:id。
func HandleGetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的比赛ID")
		return
	}
	m, err := GetByIDWithTeams(uint(id))
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if m == nil {
		response.Fail(c, http.StatusNotFound, "比赛不存在")
		return
	}
	response.OK(c, http.StatusOK, "", m)
}

// HandleGetByLeague 处理 GET /api/leagues/:id/matches。
func HandleGetByLeague(c *gin.Context) {
	leagueID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的联赛ID")
		return
	}
	matches, err := GetByLeagueWithTeams(uint(leagueID))
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "", matches)
}

// HandleGetRounds 处理 GET /api/leagues/:id/rounds。
func HandleGetRounds(c *gin.Context) {
	leagueID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的联赛ID")
		return
	}
	rounds, err := GetRoundsByLeague(uint(leagueID))
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "", rounds)
}

// HandleCreate 处理 POST /api/matches（管理员）。新比赛总是从 scheduled 开始。
func HandleCreate(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效")
		return
	}
	if req.HomeTeamID == req.AwayTeamID {
		response.Fail(c, http.StatusBadRequest, "主客队不能相同")
		return
	}
	matchDate, err := time.Parse(time.RFC3339, req.MatchDate)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的比赛时间格式")
		return
	}

	ok, err := referencesExist(req.LeagueID, req.HomeTeamID, req.AwayTeamID)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if !ok {
		response.Fail(c, http.StatusBadRequest, "联赛或球队不存在")
		return
	}

	m := Match{
		LeagueID:   req.LeagueID,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		MatchDate:  matchDate,
		Status:     StatusScheduled,
		Round:      req.Round,
	}
	if err := Create(&m); err != nil {
		response.ServerError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, "比赛创建成功", m)
}

// HandleUpdate 处理 PUT /api/matches/:id（管理员）。比分更新走独立的 score 接口。
func HandleUpdate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的比赛ID")
		return
	}
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效")
		return
	}

	m, err := GetByID(uint(id))
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if m == nil {
		response.Fail(c, http.StatusNotFound, "比赛不存在")
		return
	}

	if req.LeagueID != nil {
		m.LeagueID = *req.LeagueID
	}
	if req.HomeTeamID != nil {
		m.HomeTeamID = *req.HomeTeamID
	}
	if req.AwayTeamID != nil {
		m.AwayTeamID = *req.AwayTeamID
	}
	if m.HomeTeamID == m.AwayTeamID {
		response.Fail(c, http.StatusBadRequest, "主客队不能相同")
		return
	}
	if req.MatchDate != nil {
		matchDate, err := time.Parse(time.RFC3339, *req.MatchDate)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, "无效的比赛时间格式")
			return
		}
		m.MatchDate = matchDate
	}
	if req.Round != nil {
		m.Round = req.Round
	}

	ok, err := referencesExist(m.LeagueID, m.HomeTeamID, m.AwayTeamID)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if !ok {
		response.Fail(c, http.StatusBadRequest, "联赛或球队不存在")
		return
	}

	if err := Update(m); err != nil {
		response.ServerError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "比赛更新成功", m)
}

// referencesExist 校验联赛和两支球队都存在。
func referencesExist(leagueID, homeTeamID, awayTeamID uint) (bool, error) {
	l, err := league.GetByID(leagueID)
	if err != nil {
		return false, err
	}
	if l == nil {
		return false, nil
	}
	for _, teamID := range []uint{homeTeamID, awayTeamID} {
		t, err := team.GetByID(teamID)
		if err != nil {
			return false, err
		}
		if t == nil {
			return false, nil
		}
	}
	return true, nil
}
