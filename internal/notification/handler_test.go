package notification

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bandhub/band-management-backend/internal/apperror"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type knownEvents map[uuid.UUID]bool

func (k knownEvents) CheckEvent(_ context.Context, id uuid.UUID) error {
	if !k[id] {
		return apperror.NotFound("event not found")
	}
	return nil
}

func newLiveServer(t *testing.T, hub *Hub, events knownEvents) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/events/:id/setlist/live", NewHandler(hub, events).LiveSetlist)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestLiveSetlistStreamsChanges(t *testing.T) {
	hub := NewHub()
	eventID := uuid.New()
	base := newLiveServer(t, hub, knownEvents{eventID: true})

	conn, resp, err := websocket.DefaultDialer.Dial(base+"/events/"+eventID.String()+"/setlist/live", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	require.Eventually(t, func() bool { return hub.Subscribers(eventID) == 1 }, 2*time.Second, 10*time.Millisecond)

	order := 2
	require.NoError(t, hub.Publish(context.Background(), SetlistChange{
		Type:    TypeSetlistSongAdded,
		EventID: eventID,
		Order:   &order,
	}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got SetlistChange
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, TypeSetlistSongAdded, got.Type)
	assert.Equal(t, eventID, got.EventID)
	require.NotNil(t, got.Order)
	assert.Equal(t, 2, *got.Order)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.Subscribers(eventID) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestLiveSetlistRejectsBeforeUpgrade(t *testing.T) {
	hub := NewHub()
	base := newLiveServer(t, hub, knownEvents{})

	missing := uuid.New()
	_, resp, err := websocket.DefaultDialer.Dial(base+"/events/"+missing.String()+"/setlist/live", nil)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 0, hub.Subscribers(missing))

	_, resp, err = websocket.DefaultDialer.Dial(base+"/events/not-a-uuid/setlist/live", nil)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
