package chat

import (
	"fmt"
	"sync"

	"github.com/pronofoot/football-prediction-backend/pkg/lifecycle"
)

// GlobalRoom 是全站聊天室的房间键，联赛房间用 leagueRoom 生成。
const GlobalRoom = "global"

func leagueRoom(leagueID uint) string {
	return fmt.Sprintf("league:%d", leagueID)
}

// Hub 维护按房间分组的活跃连接，并向房间内广播消息。
// 所有房间共用一个Hub，生命周期由外部的lifecycle句柄控制。
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*connection]struct{}

	handle *lifecycle.Handle
}

// NewHub 创建聊天Hub，并挂到给定的生命周期句柄上。
// 句柄关闭时Hub会断开所有连接。
func NewHub(handle *lifecycle.Handle) *Hub {
	h := &Hub{
		rooms:  make(map[string]map[*connection]struct{}),
		handle: handle,
	}
	if handle != nil {
		go func() {
			defer handle.Close()
			<-handle.Done()
			h.closeAll()
		}()
	}
	return h
}

func (h *Hub) register(room string, c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns, ok := h.rooms[room]
	if !ok {
		conns = make(map[*connection]struct{})
		h.rooms[room] = conns
	}
	conns[c] = struct{}{}
}

func (h *Hub) unregister(room string, c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns, ok := h.rooms[room]
	if !ok {
		return
	}
	if _, present := conns[c]; present {
		delete(conns, c)
		h.closeLocked(c)
	}
	if len(conns) == 0 {
		delete(h.rooms, room)
	}
}

// broadcast 把消息投递给房间内所有连接。
// 发送缓冲已满的连接视为掉队，直接剔除。
func (h *Hub) broadcast(room string, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns := h.rooms[room]
	for c := range conns {
		select {
		case c.send <- payload:
		default:
			delete(conns, c)
			h.closeLocked(c)
		}
	}
	if len(conns) == 0 {
		delete(h.rooms, room)
	}
}

// RoomCount 返回房间内的连接数。
func (h *Hub) RoomCount(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for room, conns := range h.rooms {
		for c := range conns {
			h.closeLocked(c)
		}
		delete(h.rooms, room)
	}
}

// closeLocked 关闭连接的发送通道，调用方必须持有写锁。
// closed标记让之后的sendJSON变成无操作，避免向已关闭通道发送。
func (h *Hub) closeLocked(c *connection) {
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}
