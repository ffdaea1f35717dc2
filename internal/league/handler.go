package league

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pronofoot/football-prediction-backend/pkg/response"
)

type leagueRequest struct {
	Name    string  `json:"name" binding:"required"`
	Country *string `json:"country"`
	Season  string  `json:"season"`
	IsCup   bool    `json:"is_cup"`
	Active  *bool   `json:"active"`
}

// HandleGetAll 返回全部联赛
func HandleGetAll(c *gin.Context) {
	leagues, err := GetAll()
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "", leagues)
}

// HandleGetActive 返回开放中的联赛
func HandleGetActive(c *gin.Context) {
	leagues, err := GetActive()
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "", leagues)
}

// HandleGetByID 返回单个联赛
func HandleGetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的联赛ID")
		return
	}
	l, err := GetByID(uint(id))
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if l == nil {
		response.Fail(c, http.StatusNotFound, "联赛不存在")
		return
	}
	response.OK(c, http.StatusOK, "", l)
}

// HandleCreate 新建联赛（管理员）
func HandleCreate(c *gin.Context) {
	var req leagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	l := League{Name: req.Name, Country: req.Country, Season: req.Season, IsCup: req.IsCup, Active: active}
	if err := Create(&l); err != nil {
		response.ServerError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, "联赛创建成功", l)
}

// HandleUpdate 更新联赛（管理员）
func HandleUpdate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的联赛ID")
		return
	}

	l, err := GetByID(uint(id))
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if l == nil {
		response.Fail(c, http.StatusNotFound, "联赛不存在")
		return
	}

	var req leagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效")
		return
	}

	l.Name = req.Name
	l.Country = req.Country
	l.Season = req.Season
	l.IsCup = req.IsCup
	if req.Active != nil {
		l.Active = *req.Active
	}
	if err := Update(l); err != nil {
		response.ServerError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "联赛更新成功", l)
}

// HandleDelete 删除联赛（管理员）
func HandleDelete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的联赛ID")
		return
	}
	deleted, err := Delete(uint(id))
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if !deleted {
		response.Fail(c, http.StatusNotFound, "联赛不存在")
		return
	}
	response.OK(c, http.StatusOK, "联赛删除成功", nil)
}
