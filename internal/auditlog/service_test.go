package auditlog

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/bandhub/band-management-backend/internal/apperror"
	"github.com/bandhub/band-management-backend/internal/auth"
	"github.com/bandhub/band-management-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogActionAndQuery(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t, &auth.User{}, &AuditLog{})
	svc := NewService(NewRepository(db))

	user := &auth.User{Username: "manager", Email: "manager@example.com", PasswordHash: "x", Role: auth.RoleAdmin}
	require.NoError(t, auth.NewRepository(db).Create(ctx, user))

	target := uuid.New()
	actor := Actor{UserID: &user.ID, IP: "10.0.0.1"}
	require.NoError(t, svc.LogAction(ctx, actor, &target, ActionEventCreated, map[string]interface{}{"title": "Spring Show"}, StatusSuccess))
	require.NoError(t, svc.LogAction(ctx, Actor{IP: "10.0.0.2"}, &target, ActionSetlistSongAdded, nil, StatusFailure))

	page, err := svc.GetAuditLogs(ctx, AuditLogFilter{TargetID: &target})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, 1, page.TotalPages)

	page, err = svc.GetAuditLogs(ctx, AuditLogFilter{Action: "event_created"})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	entry := page.Data[0]
	require.NotNil(t, entry.UserName)
	assert.Equal(t, "manager", *entry.UserName)
	assert.Equal(t, "10.0.0.1", entry.IPAddress)

	var details map[string]string
	require.NoError(t, json.Unmarshal(entry.Details, &details))
	assert.Equal(t, "Spring Show", details["title"])

	got, err := svc.GetAuditLogByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, ActionEventCreated, got.Action)

	_, err = svc.GetAuditLogByID(ctx, 9999)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	page, err = svc.GetAuditLogs(ctx, AuditLogFilter{Status: StatusFailure})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Nil(t, page.Data[0].UserName)
}
