package chat

import (
	"encoding/json"
	"log"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 2048
	maxBodyBytes   = 1000
)

// truncateBody 把超长消息体截到存储上限，不在UTF-8字符中间下刀。
func truncateBody(s string) string {
	if len(s) <= maxBodyBytes {
		return s
	}
	cut := s[:maxBodyBytes]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}

// inbound 是客户端发来的消息格式。
type inbound struct {
	Body string `json:"body"`
}

// outbound 是服务端推送的消息格式。
// Type 为 message 时是单条聊天消息，history 时 Messages 携带入场历史。
type outbound struct {
	Type      string      `json:"type"`
	UserID    uint        `json:"user_id,omitempty"`
	Username  string      `json:"username,omitempty"`
	Body      string      `json:"body,omitempty"`
	CreatedAt time.Time   `json:"created_at,omitempty"`
	Messages  interface{} `json:"messages,omitempty"`
}

// connection 是一条加入了某个房间的WebSocket连接。
type connection struct {
	id       string
	hub      *Hub
	room     string
	ws       *websocket.Conn
	send     chan []byte
	userID   uint
	username string

	// closed 由hub在持有写锁时设置，之后send通道不可再用
	closed bool

	// 非空时每条消息先持久化再广播，联赛房间使用
	persist func(userID uint, body string) error
}

func newConnection(hub *Hub, room string, ws *websocket.Conn, userID uint, username string) *connection {
	return &connection{
		id:       uuid.NewString(),
		hub:      hub,
		room:     room,
		ws:       ws,
		send:     make(chan []byte, 16),
		userID:   userID,
		username: username,
	}
}

// sendJSON 把消息序列化后放进该连接的发送队列。
// 在hub的读锁下检查closed标记，与hub侧的通道关闭互斥。
func (c *connection) sendJSON(msg outbound) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	c.hub.mu.RLock()
	defer c.hub.mu.RUnlock()
	if c.closed {
		return
	}
	select {
	case c.send <- payload:
	default:
	}
}

// readPump 读取客户端消息，持久化（如配置）后广播到房间。
// 连接断开时负责注销自己。
func (c *connection) readPump() {
	defer func() {
		c.hub.unregister(c.room, c)
		c.ws.Close()
	}()
	c.ws.SetReadLimit(maxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("聊天连接异常断开 conn=%s: %v", c.id, err)
			}
			return
		}

		var msg inbound
		if err := json.Unmarshal(raw, &msg); err != nil || msg.Body == "" {
			continue
		}
		msg.Body = truncateBody(msg.Body)

		if c.persist != nil {
			if err := c.persist(c.userID, msg.Body); err != nil {
				log.Printf("聊天消息持久化失败 conn=%s: %v", c.id, err)
				continue
			}
		}

		payload, err := json.Marshal(outbound{
			Type:      "message",
			UserID:    c.userID,
			Username:  c.username,
			Body:      msg.Body,
			CreatedAt: time.Now(),
		})
		if err != nil {
			continue
		}
		c.hub.broadcast(c.room, payload)
	}
}

// writePump 把发送队列的消息写到客户端，并按周期发ping保活。
func (c *connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
