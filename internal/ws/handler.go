package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/neunato/zed/internal/component"
	"github.com/neunato/zed/internal/infrastructure/monitoring"
	"github.com/neunato/zed/internal/logging"
	"github.com/neunato/zed/internal/render"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // local tool, any origin may connect
	},
}

// Message is one frame of the showcase protocol.
type Message struct {
	Type  string `json:"type"`
	ID    string `json:"id,omitempty"`
	Theme string `json:"theme,omitempty"`
}

// Handler manages showcase WebSocket connections.
type Handler struct {
	registry     *component.Registry
	metrics      *monitoring.Metrics
	log          *logging.Logger
	defaultTheme string
}

// NewHandler creates a WebSocket handler over the given registry.
func NewHandler(registry *component.Registry, metrics *monitoring.Metrics, log *logging.Logger, defaultTheme string) *Handler {
	return &Handler{
		registry:     registry,
		metrics:      metrics,
		log:          log,
		defaultTheme: defaultTheme,
	}
}

// HandleConnection upgrades the request and serves the message loop until
// the peer disconnects.
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	h.metrics.WSConnections.Inc()
	defer h.metrics.WSConnections.Dec()

	h.send(conn, gin.H{
		"type":    "system",
		"message": "connected to component showcase",
	})

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Debug("websocket read ended", zap.Error(err))
			}
			return
		}
		h.metrics.WSMessages.WithLabelValues(msg.Type).Inc()

		switch msg.Type {
		case "catalog":
			h.handleCatalog(conn)
		case "render":
			h.handleRender(conn, msg)
		case "ping":
			h.send(conn, gin.H{"type": "pong"})
		default:
			h.sendError(conn, "unknown message type")
		}
	}
}

func (h *Handler) handleCatalog(conn *websocket.Conn) {
	snap := h.registry.Components()
	h.metrics.RecordSnapshot(snap.Len(), len(snap.AllPreviews()))

	h.send(conn, gin.H{
		"type":       "catalog",
		"components": snap.AllSorted(),
		"total":      snap.Len(),
	})
}

func (h *Handler) handleRender(conn *websocket.Conn, msg Message) {
	snap := h.registry.Components()

	meta, ok := snap.Get(component.ID(msg.ID))
	if !ok {
		h.sendError(conn, "component not found")
		return
	}
	if !meta.HasPreview() {
		h.sendError(conn, "component has no preview")
		return
	}

	theme := render.ThemeOrDefault(msg.Theme, h.defaultTheme)
	element := meta.Preview(render.NewContext(theme))
	h.metrics.PreviewRenders.WithLabelValues(msg.ID).Inc()

	h.send(conn, gin.H{
		"type":    "render",
		"id":      msg.ID,
		"theme":   theme.ID,
		"element": element,
	})
}

func (h *Handler) send(conn *websocket.Conn, payload any) {
	if err := conn.WriteJSON(payload); err != nil {
		h.log.Debug("websocket write failed", zap.Error(err))
	}
}

func (h *Handler) sendError(conn *websocket.Conn, message string) {
	h.send(conn, gin.H{"type": "error", "message": message})
}
