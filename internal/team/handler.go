package team

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pronofoot/football-prediction-backend/internal/league"
	"github.com/pronofoot/football-prediction-backend/pkg/response"
)

type teamRequest struct {
	Name     string  `json:"name" binding:"required"`
	LeagueID uint    `json:"league_id" binding:"required"`
	LogoURL  *string `json:"logo_url"`
}

// HandleGetAll 返回全部球队
func HandleGetAll(c *gin.Context) {
	teams, err := GetAll()
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "", teams)
}

// HandleGetByLeague 返回某联赛下的球队
func HandleGetByLeague(c *gin.Context) {
	leagueID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的联赛ID")
		return
	}
	teams, err := GetByLeague(uint(leagueID))
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "", teams)
}

// HandleGetByID 返回单支球队
func HandleGetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的球队ID")
		return
	}
	t, err := GetByID(uint(id))
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if t == nil {
		response.Fail(c, http.StatusNotFound, "球队不存在")
		return
	}
	response.OK(c, http.StatusOK, "", t)
}

// HandleCreate 新建球队（管理员），所属联赛必须存在。
func HandleCreate(c *gin.Context) {
	var req teamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效")
		return
	}

	l, err := league.GetByID(req.LeagueID)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if l == nil {
		response.Fail(c, http.StatusNotFound, "联赛不存在")
		return
	}

	t := Team{Name: req.Name, LeagueID: req.LeagueID, LogoURL: req.LogoURL}
	if err := Create(&t); err != nil {
		response.ServerError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, "球队创建成功", t)
}

// HandleUpdate 更新球队（管理员）
func HandleUpdate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的球队ID")
		return
	}

	t, err := GetByID(uint(id))
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if t == nil {
		response.Fail(c, http.StatusNotFound, "球队不存在")
		return
	}

	var req teamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效")
		return
	}

	t.Name = req.Name
	t.LeagueID = req.LeagueID
	t.LogoURL = req.LogoURL
	if err := Update(t); err != nil {
		response.ServerError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "球队更新成功", t)
}

// HandleDelete 删除球队（管理员）
func HandleDelete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的球队ID")
		return
	}
	deleted, err := Delete(uint(id))
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if !deleted {
		response.Fail(c, http.StatusNotFound, "球队不存在")
		return
	}
	response.OK(c, http.StatusOK, "球队删除成功", nil)
}
