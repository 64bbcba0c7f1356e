package service

import (
	"testing"

	"github.com/Bruddles/FanaticsSupportRota/database"
	"github.com/Bruddles/FanaticsSupportRota/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevTeamLifecycle(t *testing.T) {
	setup(t)
	defer teardown()

	service := DevTeamService{}

	require.NoError(t, service.AddDevTeam("platform"))
	require.NoError(t, service.AddDevTeam("mobile"))

	teams, err := service.GetDevelopmentTeams()
	require.NoError(t, err)
	assert.Len(t, teams, 2)

	require.NoError(t, service.DelDevTeam("mobile"))
	teams, err = service.GetDevelopmentTeams()
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "platform", teams[0].Name)

	// deleting a missing team neither fails nor changes anything
	assert.NoError(t, service.DelDevTeam("missing"))
	teams, err = service.GetDevelopmentTeams()
	require.NoError(t, err)
	assert.Len(t, teams, 1)
}

func TestAddDevTeamEmptyName(t *testing.T) {
	setup(t)
	defer teardown()

	service := DevTeamService{}
	assert.Error(t, service.AddDevTeam("  "))
}

func TestJoinDevTeam(t *testing.T) {
	setup(t)
	defer teardown()

	devTeams := DevTeamService{}
	users := UserService{}

	require.NoError(t, devTeams.AddDevTeam("platform"))
	_, err := users.CreateUser("alice", "", model.TypeDeveloper, "")
	require.NoError(t, err)

	require.NoError(t, devTeams.JoinDevTeam("platform", "alice"))
	user, err := users.GetUserDetails("alice")
	require.NoError(t, err)
	assert.Equal(t, "platform", user.DevelopmentTeam)

	// joining a missing user is a no-op
	assert.NoError(t, devTeams.JoinDevTeam("platform", "ghost"))
	var count int64
	require.NoError(t, database.GetDB().Model(model.User{}).
		Where("development_team = ?", "platform").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
