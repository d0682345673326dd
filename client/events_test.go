package client

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gotrs-io/tdx-go/types"
)

func TestEventsStream(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	upgrader := websocket.Upgrader{}
	api.mux.HandleFunc("/ws/events", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+api.token, r.Header.Get("Authorization"))

		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		event := types.Event{
			Type:       "ticket.updated",
			ItemType:   "Ticket",
			ItemID:     42,
			OccurredAt: time.Now().UTC(),
		}
		require.NoError(t, conn.WriteJSON(event))
	})

	client := NewClientWithPassword(api.serve.URL, "alice", "secret")

	stream, err := client.Events.Stream(ctx)
	require.NoError(t, err)
	defer stream.Close()

	event, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, "ticket.updated", event.Type)
	assert.Equal(t, 42, event.ItemID)
}

func TestWSEndpoint(t *testing.T) {
	cases := []struct {
		base string
		want string
	}{
		{"https://tdx.example.com", "wss://tdx.example.com/ws/events"},
		{"http://127.0.0.1:8080", "ws://127.0.0.1:8080/ws/events"},
		{"https://tdx.example.com/api", "wss://tdx.example.com/ws/events"},
	}
	for _, tc := range cases {
		got, err := wsEndpoint(tc.base)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}
