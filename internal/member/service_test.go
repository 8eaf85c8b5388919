package member

import (
	"context"
	"testing"

	"github.com/bandhub/band-management-backend/internal/apperror"
	"github.com/bandhub/band-management-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewRepository(testutil.NewDB(t, &Member{})))

	inactive := false
	_, err := svc.CreateMember(ctx, CreateMemberRequest{Name: "Thom", RoleInBand: "Vocals"})
	require.NoError(t, err)
	ed, err := svc.CreateMember(ctx, CreateMemberRequest{Name: "Ed", RoleInBand: "Guitar", IsActiveMember: &inactive})
	require.NoError(t, err)
	assert.False(t, ed.IsActiveMember)

	active := true
	page, err := svc.ListMembers(ctx, ListFilter{Active: &active})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Thom", page.Data[0].Name)

	page, err = svc.ListMembers(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, "Ed", page.Data[0].Name)

	role := "Rhythm guitar"
	updated, err := svc.UpdateMember(ctx, ed.ID, UpdateMemberRequest{RoleInBand: &role, IsActiveMember: &active})
	require.NoError(t, err)
	assert.Equal(t, role, updated.RoleInBand)
	assert.True(t, updated.IsActiveMember)

	require.NoError(t, svc.DeleteMember(ctx, ed.ID))
	_, err = svc.GetMember(ctx, ed.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(svc.DeleteMember(ctx, uuid.New())))
}
