package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConnection(hub *Hub, room string) *connection {
	return newConnection(hub, room, nil, 1, "alice")
}

func TestHubRegisterAndUnregister(t *testing.T) {
	hub := NewHub(nil)

	c1 := testConnection(hub, GlobalRoom)
	c2 := testConnection(hub, GlobalRoom)
	hub.register(GlobalRoom, c1)
	hub.register(GlobalRoom, c2)
	assert.Equal(t, 2, hub.RoomCount(GlobalRoom))

	hub.unregister(GlobalRoom, c1)
	assert.Equal(t, 1, hub.RoomCount(GlobalRoom))

	// 重复注销不做任何事
	hub.unregister(GlobalRoom, c1)
	assert.Equal(t, 1, hub.RoomCount(GlobalRoom))

	hub.unregister(GlobalRoom, c2)
	assert.Zero(t, hub.RoomCount(GlobalRoom))
}

func TestHubBroadcastIsRoomScoped(t *testing.T) {
	hub := NewHub(nil)

	global := testConnection(hub, GlobalRoom)
	league1 := testConnection(hub, leagueRoom(1))
	league2 := testConnection(hub, leagueRoom(2))
	hub.register(GlobalRoom, global)
	hub.register(leagueRoom(1), league1)
	hub.register(leagueRoom(2), league2)

	hub.broadcast(leagueRoom(1), []byte("salut"))

	select {
	case msg := <-league1.send:
		assert.Equal(t, "salut", string(msg))
	default:
		t.Fatal("league1 should have received the message")
	}
	assert.Empty(t, global.send)
	assert.Empty(t, league2.send)
}

func TestHubBroadcastDropsSlowConnections(t *testing.T) {
	hub := NewHub(nil)
	room := leagueRoom(1)

	slow := testConnection(hub, room)
	hub.register(room, slow)

	// 填满发送缓冲后，下一次广播会把连接剔除
	for i := 0; i < cap(slow.send); i++ {
		slow.send <- []byte("x")
	}
	hub.broadcast(room, []byte("overflow"))

	assert.Zero(t, hub.RoomCount(room))
}

func TestHubCloseAll(t *testing.T) {
	hub := NewHub(nil)

	c1 := testConnection(hub, GlobalRoom)
	c2 := testConnection(hub, leagueRoom(1))
	hub.register(GlobalRoom, c1)
	hub.register(leagueRoom(1), c2)

	hub.closeAll()

	assert.Zero(t, hub.RoomCount(GlobalRoom))
	assert.Zero(t, hub.RoomCount(leagueRoom(1)))

	_, open := <-c1.send
	require.False(t, open)
	_, open = <-c2.send
	require.False(t, open)
}
