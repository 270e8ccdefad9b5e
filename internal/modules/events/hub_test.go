package events

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtsvc "propertyhub/internal/pkg/jwt"
)

func setupEventsServer(t *testing.T) (*Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	j := jwtsvc.New("events-secret", time.Hour)
	hub := NewHub()
	t.Cleanup(hub.Close)

	r := gin.New()
	api := r.Group("/api")
	NewHandler(hub, j).RegisterRoutes(api)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	token, err := j.GenerateToken("u-1", "admin")
	require.NoError(t, err)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/events/ws?token=" + token
	return hub, wsURL
}

func TestConnectRequiresValidToken(t *testing.T) {
	_, wsURL := setupEventsServer(t)

	badURL := wsURL[:strings.Index(wsURL, "?")] + "?token=garbage"
	_, resp, err := websocket.DefaultDialer.Dial(badURL, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestPublishReachesConnectedClient(t *testing.T) {
	hub, wsURL := setupEventsServer(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return hub.ConnectionCount() == 1
	}, time.Second, 10*time.Millisecond)

	hub.Publish("comment.created", map[string]string{"id": "c-1"})

	var ev Event
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, "comment.created", ev.Type)

	payload, ok := ev.Payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "c-1", payload["id"])
}

func TestDeadConnectionsDropped(t *testing.T) {
	hub, wsURL := setupEventsServer(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return hub.ConnectionCount() == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		return hub.ConnectionCount() == 0
	}, time.Second, 10*time.Millisecond)
}
