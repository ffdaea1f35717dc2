package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pronofoot/football-prediction-backend/pkg/response"
)

// cookieMaxAge 与token有效期保持同量级
const cookieMaxAge = 60 * 60

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func setTokenCookie(c *gin.Context, t string) {
	// secure=false: 部署在反向代理之后时由代理终结TLS
	c.SetCookie(CookieName, t, cookieMaxAge, "/", "", false, true)
}

// HandleRegister 处理用户注册
func HandleRegister(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "用户名和密码都是必填的")
		return
	}

	u, t, err := Register(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			response.Fail(c, http.StatusBadRequest, "该用户名已被占用")
			return
		}
		response.ServerError(c, err)
		return
	}

	setTokenCookie(c, t)
	response.OK(c, http.StatusCreated, "注册成功", gin.H{
		"id":       u.ID,
		"username": u.Username,
		"token":    t,
	})
}

// HandleLogin 处理用户登录
func HandleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "用户名和密码都是必填的")
		return
	}

	u, t, err := Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, "用户名或密码错误")
			return
		}
		response.ServerError(c, err)
		return
	}

	setTokenCookie(c, t)
	response.OK(c, http.StatusOK, "登录成功", gin.H{
		"id":       u.ID,
		"username": u.Username,
		"role":     u.Role,
		"token":    t,
	})
}

// HandleMe 返回当前登录用户的信息，积分从库里重新读取。
func HandleMe(c *gin.Context) {
	u, err := GetByID(CurrentUserID(c))
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if u == nil {
		response.Fail(c, http.StatusNotFound, "用户不存在")
		return
	}
	response.OK(c, http.StatusOK, "", u)
}

// HandleListUsers 管理后台：按积分降序列出用户。
func HandleListUsers(c *gin.Context) {
	users, err := ListByPoints(100, 0)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "", users)
}
