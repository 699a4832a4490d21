package ws_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/sidimedmar/profeleve/internal/ws"
)

func dialTestClient(t *testing.T, hub *ws.Hub) *websocket.Conn {
	t.Helper()
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.AddConnection(conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestBroadcastReachesClient(t *testing.T) {
	hub := ws.NewHub()
	client := dialTestClient(t, hub)

	hub.Broadcast(ws.WSMessage{
		Type: "submission_received",
		Data: map[string]any{"student_name": "Amina"},
	})

	require.NoError(t, client.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, raw, err := client.ReadMessage()
	require.NoError(t, err)

	var msg ws.WSMessage
	require.NoError(t, json.Unmarshal(raw, &msg))
	require.Equal(t, "submission_received", msg.Type)
}

func TestBroadcastWithoutClients(t *testing.T) {
	hub := ws.NewHub()

	// Nothing to write to; the broadcast must not panic or block.
	hub.Broadcast(ws.WSMessage{Type: "ping"})
}
