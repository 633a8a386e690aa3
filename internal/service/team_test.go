package service

import (
	"context"
	"testing"

	"pms-tracker/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureTeamAssignsPOCAndMembers(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)
	ctx := context.Background()

	poc := model.User{Username: "smriti", Name: "Smriti Panigrahi", Role: model.RoleMember}
	member := model.User{Username: "kanak", Name: "Kanak Bansal", Role: model.RoleMember}
	require.NoError(t, db.Create(&poc).Error)
	require.NoError(t, db.Create(&member).Error)

	team, err := svc.Ensure(ctx, TeamSpec{
		Name:         "TND",
		POCName:      "Smriti Panigrahi",
		Members:      []string{"Kanak Bansal", "Nobody Known"},
		POCTarget:    50,
		MemberTarget: 30,
		TeamTarget:   150,
	})
	require.NoError(t, err)
	assert.Equal(t, 150, team.Target)

	var got model.User
	require.NoError(t, db.First(&got, poc.ID).Error)
	assert.True(t, got.IsPOC)
	assert.Equal(t, 50, got.Target)
	require.NotNil(t, got.TeamID)
	assert.Equal(t, team.ID, *got.TeamID)

	got = model.User{}
	require.NoError(t, db.First(&got, member.ID).Error)
	assert.False(t, got.IsPOC)
	assert.Equal(t, 30, got.Target)
	require.NotNil(t, got.TeamID)

	members, err := svc.Members(ctx, team.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestEnsureTeamIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)
	ctx := context.Background()

	first, err := svc.Ensure(ctx, TeamSpec{Name: "RECRUITMENT", TeamTarget: 150})
	require.NoError(t, err)
	second, err := svc.Ensure(ctx, TeamSpec{Name: "RECRUITMENT", TeamTarget: 150})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.EqualValues(t, 1, countRows(t, db, &model.Team{}))
}
