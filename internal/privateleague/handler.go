package privateleague

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pronofoot/football-prediction-backend/internal/user"
	"github.com/pronofoot/football-prediction-backend/pkg/response"
)

type createLeagueRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	MaxMembers  *int    `json:"max_members" binding:"omitempty,min=2,max=100"`
}

type joinRequest struct {
	InviteCode string `json:"invite_code" binding:"required"`
}

// HandleCreate 处理 POST /api/private-leagues。
func HandleCreate(c *gin.Context) {
	var req createLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效")
		return
	}
	maxMembers := 20
	if req.MaxMembers != nil {
		maxMembers = *req.MaxMembers
	}

	pl, err := CreateLeague(user.CurrentUserID(c), req.Name, req.Description, maxMembers)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, "私人联赛创建成功", pl)
}

// HandleJoin 处理 POST /api/private-leagues/join。
func HandleJoin(c *gin.Context) {
	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效")
		return
	}

	pl, err := JoinByCode(user.CurrentUserID(c), req.InviteCode)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCode):
			response.Fail(c, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrLeagueInactive), errors.Is(err, ErrAlreadyMember), errors.Is(err, ErrLeagueFull):
			response.Fail(c, http.StatusBadRequest, err.Error())
		default:
			response.ServerError(c, err)
		}
		return
	}
	response.OK(c, http.StatusOK, "加入联赛成功", pl)
}

// HandleGetMine 处理 GET /api/private-leagues。
func HandleGetMine(c *gin.Context) {
	leagues, err := GetSummariesByUser(user.CurrentUserID(c))
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "", leagues)
}

// HandleGetDetail 处理 GET /api/private-leagues/:id。
func HandleGetDetail(c *gin.Context) {
	leagueID, ok := leagueIDParam(c)
	if !ok {
		return
	}
	detail, err := GetDetail(user.CurrentUserID(c), leagueID)
	if err != nil {
		switch {
		case errors.Is(err, ErrLeagueNotFound):
			response.Fail(c, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrNotMember):
			response.Fail(c, http.StatusForbidden, err.Error())
		default:
			response.ServerError(c, err)
		}
		return
	}
	response.OK(c, http.StatusOK, "", detail)
}

// HandleLeave 处理 POST /api/private-leagues/:id/leave。
func HandleLeave(c *gin.Context) {
	leagueID, ok := leagueIDParam(c)
	if !ok {
		return
	}
	if err := Leave(user.CurrentUserID(c), leagueID); err != nil {
		switch {
		case errors.Is(err, ErrLeagueNotFound):
			response.Fail(c, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrCreatorCannotLeave):
			response.Fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrNotMember):
			response.Fail(c, http.StatusForbidden, err.Error())
		default:
			response.ServerError(c, err)
		}
		return
	}
	response.OK(c, http.StatusOK, "已退出联赛", nil)
}

// HandleDelete 处理 DELETE /api/private-leagues/:id。
func HandleDelete(c *gin.Context) {
	leagueID, ok := leagueIDParam(c)
	if !ok {
		return
	}
	if err := DeleteLeague(user.CurrentUserID(c), leagueID); err != nil {
		switch {
		case errors.Is(err, ErrLeagueNotFound):
			response.Fail(c, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrNotMember), errors.Is(err, ErrNotLeagueAdmin):
			response.Fail(c, http.StatusForbidden, err.Error())
		default:
			response.ServerError(c, err)
		}
		return
	}
	response.OK(c, http.StatusOK, "联赛删除成功", nil)
}

// HandleSync 处理 POST /api/private-leagues/:id/sync。
func HandleSync(c *gin.Context) {
	leagueID, ok := leagueIDParam(c)
	if !ok {
		return
	}
	synced, err := SyncLeaguePoints(user.CurrentUserID(c), leagueID)
	if err != nil {
		switch {
		case errors.Is(err, ErrLeagueNotFound):
			response.Fail(c, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrNotMember), errors.Is(err, ErrNotLeagueAdmin):
			response.Fail(c, http.StatusForbidden, err.Error())
		default:
			response.ServerError(c, err)
		}
		return
	}
	response.OK(c, http.StatusOK, "联赛积分同步完成", gin.H{"synced_members": synced})
}

// leagueIDParam 解析路径中的联赛 ID，失败时直接写400响应。
func leagueIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的联赛ID")
		return 0, false
	}
	return uint(id), true
}
