package auditlog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bandhub/band-management-backend/internal/auth"
	"github.com/bandhub/band-management-backend/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	db := testutil.NewDB(t, &auth.User{}, &AuditLog{})
	svc := NewService(NewRepository(db))

	target := uuid.New()
	require.NoError(t, svc.LogAction(ctx, Actor{IP: "10.0.0.1"}, &target, ActionSetlistSongAdded, nil, StatusSuccess))
	require.NoError(t, svc.LogAction(ctx, Actor{IP: "10.0.0.1"}, nil, ActionReportExported, nil, StatusSuccess))

	h := NewHandler(svc)
	r := gin.New()
	r.GET("/auditlogs", h.GetAuditLogs)
	r.GET("/auditlogs/:id", h.GetAuditLogByID)

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	w := get("/auditlogs?event_id=" + target.String())
	require.Equal(t, http.StatusOK, w.Code)
	var page PaginatedAuditLogs
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Data, 1)
	assert.Equal(t, ActionSetlistSongAdded, page.Data[0].Action)

	w = get("/auditlogs?to_date=2000-01-01")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Empty(t, page.Data)
	assert.Equal(t, int64(0), page.Total)

	for _, path := range []string{
		"/auditlogs?from_date=yesterday",
		"/auditlogs?user_id=not-a-uuid",
		"/auditlogs/abc",
	} {
		assert.Equal(t, http.StatusBadRequest, get(path).Code, path)
	}

	assert.Equal(t, http.StatusNotFound, get("/auditlogs/4242").Code)
}
