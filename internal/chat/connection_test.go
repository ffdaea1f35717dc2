package chat

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeagueJoinHistoryPrecedesLiveBroadcast(t *testing.T) {
	hub := NewHub(nil)
	room := leagueRoom(1)
	conn := testConnection(hub, room)

	// 入场流程：先入队历史回放，再注册进房间
	conn.sendJSON(outbound{Type: "history", Messages: []outbound{}})
	hub.register(room, conn)

	live, err := json.Marshal(outbound{Type: "message", Body: "allez"})
	require.NoError(t, err)
	hub.broadcast(room, live)

	var first, second outbound
	require.NoError(t, json.Unmarshal(<-conn.send, &first))
	require.NoError(t, json.Unmarshal(<-conn.send, &second))
	assert.Equal(t, "history", first.Type)
	assert.Equal(t, "message", second.Type)
}

func TestSendJSONAfterShutdownIsNoOp(t *testing.T) {
	hub := NewHub(nil)
	conn := testConnection(hub, GlobalRoom)
	hub.register(GlobalRoom, conn)

	hub.closeAll()

	require.NotPanics(t, func() {
		conn.sendJSON(outbound{Type: "message", Body: "trop tard"})
	})
}

func TestTruncateBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "短消息原样保留",
			body: "bonjour",
			want: "bonjour",
		},
		{
			name: "超长ASCII按字节截断",
			body: strings.Repeat("a", maxBodyBytes+50),
			want: strings.Repeat("a", maxBodyBytes),
		},
		{
			name: "截断点落在多字节字符中间时退到字符边界",
			body: strings.Repeat("a", maxBodyBytes-1) + "加油",
			want: strings.Repeat("a", maxBodyBytes-1),
		},
		{
			name: "中文消息按字符截断",
			body: strings.Repeat("球", maxBodyBytes),
			want: strings.Repeat("球", maxBodyBytes/3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncateBody(tt.body))
		})
	}
}
