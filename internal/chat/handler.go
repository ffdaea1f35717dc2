package chat

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/pronofoot/football-prediction-backend/internal/privateleague"
	"github.com/pronofoot/football-prediction-backend/internal/user"
	"github.com/pronofoot/football-prediction-backend/pkg/response"
	"github.com/pronofoot/football-prediction-backend/pkg/token"
)

// 跨域已由CORS中间件在HTTP层把关，这里不再重复校验Origin。
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handler 持有Hub并暴露WebSocket入口。
type Handler struct {
	hub         *Hub
	historySize int
}

// NewHandler 创建聊天入口处理器。historySize 是联赛房间入场时回放的消息条数。
func NewHandler(hub *Hub, historySize int) *Handler {
	if historySize <= 0 {
		historySize = 20
	}
	return &Handler{hub: hub, historySize: historySize}
}

// HandleGlobal 处理 GET /ws，全站聊天室。消息不持久化，在线广播即焚。
func (h *Handler) HandleGlobal(c *gin.Context) {
	claims, ok := authenticate(c)
	if !ok {
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	conn := newConnection(h.hub, GlobalRoom, ws, claims.UserID, claims.Username())
	h.hub.register(GlobalRoom, conn)
	go conn.writePump()
	go conn.readPump()
}

// HandleLeague 处理 GET /ws/leagues/:id，私人联赛聊天室。
// 成员校验在升级协议之前完成，非成员拿到的是普通的403响应。
// 消息先落库再广播，入场时回放最近的历史。
func (h *Handler) HandleLeague(c *gin.Context) {
	leagueID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的联赛ID")
		return
	}
	claims, ok := authenticate(c)
	if !ok {
		return
	}

	isMember, err := privateleague.IsActiveMember(uint(leagueID), claims.UserID)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if !isMember {
		response.Fail(c, http.StatusForbidden, "不是该联赛成员")
		return
	}

	history, err := privateleague.GetRecentMessages(uint(leagueID), h.historySize)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	room := leagueRoom(uint(leagueID))
	conn := newConnection(h.hub, room, ws, claims.UserID, claims.Username())
	conn.persist = func(userID uint, body string) error {
		return privateleague.CreateMessage(&privateleague.Message{
			PrivateLeagueID: uint(leagueID),
			UserID:          userID,
			Body:            body,
		})
	}
	// 历史回放先入队再注册，保证客户端先收到history再收到实时消息。
	conn.sendJSON(outbound{Type: "history", Messages: history})
	h.hub.register(room, conn)
	go conn.writePump()
	go conn.readPump()
}

// authenticate 在协议升级前完成认证。
// token 按 cookie、query参数、Authorization头 的顺序取。
func authenticate(c *gin.Context) (*token.Claims, bool) {
	raw, err := c.Cookie(user.CookieName)
	if err != nil || raw == "" {
		raw = c.Query("token")
	}
	if raw == "" {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			raw = strings.TrimPrefix(header, "Bearer ")
		}
	}
	if raw == "" {
		response.Fail(c, http.StatusUnauthorized, "需要登录")
		return nil, false
	}

	claims, err := token.Parse(raw)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "Token无效或已过期")
		return nil, false
	}
	return claims, true
}
