package event

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bandhub/band-management-backend/internal/httpx"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(f *fixture) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(httpx.KeyUserID, f.editor.ID)
		c.Next()
	})

	h := NewHandler(f.svc)
	r.GET("/events", h.ListEvents)
	r.POST("/events", h.CreateEvent)
	r.GET("/events/:id", h.GetEventByID)
	r.PUT("/events/:id", h.UpdateEvent)
	r.DELETE("/events/:id", h.DeleteEvent)
	r.GET("/events/:id/setlist", h.GetEventSetlist)
	r.POST("/events/:id/setlist", h.AddSongToSetlist)
	r.PUT("/events/:id/setlist/songs/:songId", h.UpdateSetlistEntry)
	r.DELETE("/events/:id/setlist/songs/:songId", h.RemoveSongFromSetlist)
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandlerEventLifecycle(t *testing.T) {
	f := newFixture(t, 3)
	r := newRouter(f)

	w := do(t, r, http.MethodPost, "/events", gin.H{
		"title": "Spring Show",
		"date":  "2026-04-18",
		"setlist_entries": []gin.H{
			{"song_id": f.songs[0].ID, "order_in_setlist": 1},
			{"song_id": f.songs[1].ID, "order_in_setlist": 2},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Len(t, created.SetlistEntries, 2)
	require.NotNil(t, created.CreatedByUserID)
	assert.Equal(t, f.editor.ID, *created.CreatedByUserID)

	base := "/events/" + created.ID.String()

	w = do(t, r, http.MethodPost, base+"/setlist", gin.H{"song_id": f.songs[2].ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var entry SetlistEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	assert.Equal(t, 3, entry.OrderInSetlist)

	w = do(t, r, http.MethodPut, base+"/setlist/songs/"+f.songs[2].ID.String(), gin.H{"order_in_setlist": 1})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"kind":"order_conflict"`)

	w = do(t, r, http.MethodDelete, base+"/setlist/songs/"+f.songs[0].ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, base+"/setlist", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var entries []SetlistEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Equal(t, []int{2, 3}, orders(entries))

	w = do(t, r, http.MethodPut, base, gin.H{"title": "Spring Show II", "setlist_entries": []gin.H{}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Spring Show II", updated.Title)
	assert.Empty(t, updated.SetlistEntries)

	w = do(t, r, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, base+"/setlist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlerErrorMapping(t *testing.T) {
	f := newFixture(t, 1)
	r := newRouter(f)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		kind   string
	}{
		{name: "malformed id", method: http.MethodGet, path: "/events/not-a-uuid", status: http.StatusBadRequest, kind: "invalid_input"},
		{name: "unknown event", method: http.MethodGet, path: "/events/" + uuid.NewString(), status: http.StatusNotFound, kind: "not_found"},
		{name: "missing title", method: http.MethodPost, path: "/events", body: gin.H{"date": "2026-01-01"}, status: http.StatusBadRequest},
		{name: "bad date", method: http.MethodPost, path: "/events", body: gin.H{"title": "x", "date": "soon"}, status: http.StatusBadRequest, kind: "invalid_input"},
		{
			name:   "duplicate song in batch",
			method: http.MethodPost,
			path:   "/events",
			body: gin.H{"title": "x", "date": "2026-01-01", "setlist_entries": []gin.H{
				{"song_id": f.songs[0].ID}, {"song_id": f.songs[0].ID},
			}},
			status: http.StatusConflict,
			kind:   "duplicate_song",
		},
		{
			name:   "unknown song in batch",
			method: http.MethodPost,
			path:   "/events",
			body:   gin.H{"title": "x", "date": "2026-01-01", "setlist_entries": []gin.H{{"song_id": uuid.New()}}},
			status: http.StatusBadRequest,
			kind:   "invalid_reference",
		},
		{name: "bad is_public", method: http.MethodGet, path: "/events?is_public=maybe", status: http.StatusBadRequest, kind: "invalid_input"},
		{name: "inverted range", method: http.MethodGet, path: "/events?date_from=2026-05-01&date_to=2026-04-01", status: http.StatusBadRequest, kind: "invalid_input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.kind != "" {
				assert.Contains(t, w.Body.String(), `"kind":"`+tt.kind+`"`)
			}
		})
	}
}

func TestHandlerListDateToCoversWholeDay(t *testing.T) {
	f := newFixture(t, 0)
	r := newRouter(f)

	w := do(t, r, http.MethodPost, "/events", gin.H{"title": "Late Show", "date": "2026-04-18T22:30:00Z"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/events?date_from=2026-04-18&date_to=2026-04-18", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page PaginatedEvents
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, []string{"Late Show"}, titles(page.Data))
}
