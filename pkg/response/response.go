package response

import (
	"log"

	"github.com/gin-gonic/gin"
)

// Body 是所有API响应的统一结构。
// 每个响应都携带success标志和一个给人看的message。
type Body struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// exposeDetail 决定是否在响应中携带内部错误详情。
// 生产模式下隐藏，避免泄露内部信息。
var exposeDetail = true

// SetMode 根据Gin的运行模式配置错误详情的可见性。
func SetMode(ginMode string) {
	exposeDetail = ginMode != "release"
}

// OK 返回一个成功响应。
func OK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Body{Success: true, Message: message, Data: data})
}

// Fail 返回一个业务失败响应，message对调用方可见。
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Body{Success: false, Message: message})
}

// ServerError 返回一个通用的服务器错误响应。
// 详细错误只在非生产模式下附带，生产模式下只记录在服务端日志。
func ServerError(c *gin.Context, err error) {
	if err != nil {
		log.Printf("服务器错误: %v", err)
	}
	body := Body{Success: false, Message: "服务器错误"}
	if exposeDetail && err != nil {
		body.Error = err.Error()
	}
	c.JSON(500, body)
}
