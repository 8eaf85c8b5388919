package notification

import (
	"context"
	"net/http"
	"time"

	"github.com/bandhub/band-management-backend/internal/httpx"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeTimeout = 10 * time.Second
	pingInterval = 50 * time.Second
	pongWait     = 60 * time.Second
)

// EventChecker resolves whether an event exists before a feed is opened.
type EventChecker interface {
	CheckEvent(ctx context.Context, id uuid.UUID) error
}

type Handler struct {
	Hub      *Hub
	Events   EventChecker
	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub, events EventChecker) *Handler {
	return &Handler{
		Hub:    hub,
		Events: events,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// LiveSetlist streams setlist changes of one event over a websocket.
// @Summary Live setlist feed
// @Tags events
// @Param id path string true "Event ID"
// @Success 101 "switching protocols"
// @Failure 404 {object} map[string]string
// @Router /events/{id}/setlist/live [get]
func (h *Handler) LiveSetlist(c *gin.Context) {
	eventID, err := httpx.UUIDParam(c, "id")
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	if err := h.Events.CheckEvent(c.Request.Context(), eventID); err != nil {
		httpx.RespondError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn("websocket upgrade failed", "event_id", eventID, "err", err)
		return
	}

	changes, unsubscribe := h.Hub.Subscribe(eventID)
	done := make(chan struct{})
	go h.readLoop(conn, done)
	h.writeLoop(conn, changes, done)
	unsubscribe()
	conn.Close()
}

func (h *Handler) writeLoop(conn *websocket.Conn, changes <-chan SetlistChange, done <-chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case change, ok := <-changes:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(change); err != nil {
				log.Debug("websocket write failed", "err", err)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readLoop only drains control frames; the feed is one-way.
func (h *Handler) readLoop(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug("websocket closed unexpectedly", "err", err)
			}
			return
		}
	}
}
