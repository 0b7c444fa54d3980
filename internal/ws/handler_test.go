package ws

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neunato/zed/internal/component"
	"github.com/neunato/zed/internal/infrastructure/monitoring"
	"github.com/neunato/zed/internal/logging"
	"github.com/neunato/zed/internal/render"
)

func dialTestServer(t *testing.T) *websocket.Conn {
	t.Helper()

	reg := component.NewRegistry()
	reg.RegisterComponent(component.ScopeInput, "Button", "")
	reg.RegisterComponent(component.ScopeLayout, "Divider", "")
	reg.RegisterPreview("Button", func(rc *render.Context) render.Element {
		return render.El("button", render.Text("Click me"))
	})

	gin.SetMode(gin.TestMode)
	handler := NewHandler(reg, monitoring.New(prometheus.NewRegistry()), logging.Nop(), "one-dark")

	router := gin.New()
	router.GET("/stream", handler.HandleConnection)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// Consume the welcome frame so tests start from a clean stream.
	var welcome map[string]any
	require.NoError(t, conn.ReadJSON(&welcome))
	require.Equal(t, "system", welcome["type"])

	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, msg Message) map[string]any {
	t.Helper()

	require.NoError(t, conn.WriteJSON(msg))
	var reply map[string]any
	require.NoError(t, conn.ReadJSON(&reply))
	return reply
}

func TestPingPong(t *testing.T) {
	conn := dialTestServer(t)
	reply := roundTrip(t, conn, Message{Type: "ping"})
	assert.Equal(t, "pong", reply["type"])
}

func TestCatalogMessage(t *testing.T) {
	conn := dialTestServer(t)

	reply := roundTrip(t, conn, Message{Type: "catalog"})
	assert.Equal(t, "catalog", reply["type"])
	assert.EqualValues(t, 2, reply["total"])

	components, ok := reply["components"].([]any)
	require.True(t, ok)
	require.Len(t, components, 2)
	first, ok := components[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Button", first["name"])
}

func TestRenderMessage(t *testing.T) {
	conn := dialTestServer(t)

	reply := roundTrip(t, conn, Message{Type: "render", ID: "Button", Theme: "one-light"})
	assert.Equal(t, "render", reply["type"])
	assert.Equal(t, "one-light", reply["theme"])

	element, ok := reply["element"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "button", element["type"])
}

func TestRenderErrors(t *testing.T) {
	conn := dialTestServer(t)

	reply := roundTrip(t, conn, Message{Type: "render", ID: "Missing"})
	assert.Equal(t, "error", reply["type"])
	assert.Equal(t, "component not found", reply["message"])

	reply = roundTrip(t, conn, Message{Type: "render", ID: "Divider"})
	assert.Equal(t, "error", reply["type"])
	assert.Equal(t, "component has no preview", reply["message"])
}

func TestUnknownMessageType(t *testing.T) {
	conn := dialTestServer(t)

	reply := roundTrip(t, conn, Message{Type: "bogus"})
	assert.Equal(t, "error", reply["type"])
	assert.Equal(t, "unknown message type", reply["message"])
}
