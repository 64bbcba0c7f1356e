package service

import (
	"os"
	"testing"

	"github.com/Bruddles/FanaticsSupportRota/database"
	"github.com/Bruddles/FanaticsSupportRota/database/model"
	"github.com/Bruddles/FanaticsSupportRota/util/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	dbPath := "test.db"
	os.Remove(dbPath)
	require.NoError(t, database.InitDB(dbPath))
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

func countUsers(t *testing.T) int64 {
	var count int64
	require.NoError(t, database.GetDB().Model(model.User{}).Count(&count).Error)
	return count
}

func TestCreateUserAndLogin(t *testing.T) {
	setup(t)
	defer teardown()

	service := UserService{}

	password, err := service.CreateUser("alice", "platform", model.TypeDeveloper, "senior")
	require.NoError(t, err)
	assert.Len(t, password, random.PasswordLength)

	assert.True(t, service.Login("alice", password))
	assert.False(t, service.Login("alice", "wrong"))

	// unknown usernames fail without surfacing a not-found error
	assert.False(t, service.Login("ghost", "x"))
}

func TestCreateUserDuplicate(t *testing.T) {
	setup(t)
	defer teardown()

	service := UserService{}

	_, err := service.CreateUser("bob", "", model.TypeDeveloper, "")
	require.NoError(t, err)
	before := countUsers(t)

	_, err = service.CreateUser("bob", "", model.TypeDeveloper, "")
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Equal(t, before, countUsers(t))
}

func TestCreateUserEmptyUsername(t *testing.T) {
	setup(t)
	defer teardown()

	service := UserService{}
	_, err := service.CreateUser("   ", "", model.TypeDeveloper, "")
	assert.Error(t, err)
}

func TestGetAllUsersDevelopersOnly(t *testing.T) {
	setup(t)
	defer teardown()

	service := UserService{}
	_, err := service.CreateUser("carol", "platform", model.TypeDeveloper, "mid")
	require.NoError(t, err)

	// the seeded admin account must not appear
	users, err := service.GetAllUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "carol", users[0].Username)
	assert.Empty(t, users[0].Password)
}

func TestGetUserType(t *testing.T) {
	setup(t)
	defer teardown()

	service := UserService{}
	_, err := service.CreateUser("dave", "", model.TypeDeveloper, "")
	require.NoError(t, err)

	userType, err := service.GetUserType("dave")
	require.NoError(t, err)
	assert.Equal(t, model.TypeDeveloper, userType)

	_, err = service.GetUserType("ghost")
	assert.True(t, database.IsNotFound(err))
}

func TestGetUserDetails(t *testing.T) {
	setup(t)
	defer teardown()

	service := UserService{}
	_, err := service.CreateUser("erin", "mobile", model.TypeDeveloper, "junior")
	require.NoError(t, err)

	user, err := service.GetUserDetails("erin")
	require.NoError(t, err)
	assert.Equal(t, "mobile", user.DevelopmentTeam)
	assert.Empty(t, user.Password)

	// admins are not developers, so the lookup misses
	_, err = service.GetUserDetails("admin")
	assert.True(t, database.IsNotFound(err))

	_, err = service.GetUserDetails("ghost")
	assert.True(t, database.IsNotFound(err))
}

func TestChangePasswordAndUpdateDetails(t *testing.T) {
	setup(t)
	defer teardown()

	service := UserService{}
	password, err := service.CreateUser("frank", "", model.TypeDeveloper, "")
	require.NoError(t, err)

	require.NoError(t, service.ChangePassword("newpass", "frank"))
	assert.False(t, service.Login("frank", password))
	assert.True(t, service.Login("frank", "newpass"))

	require.NoError(t, service.UpdateUserDetails("web", "senior", "frank"))
	user, err := service.GetUserDetails("frank")
	require.NoError(t, err)
	assert.Equal(t, "web", user.DevelopmentTeam)
	assert.Equal(t, "senior", user.Experience)

	// both are silent no-ops for missing usernames
	assert.NoError(t, service.ChangePassword("x", "ghost"))
	assert.NoError(t, service.UpdateUserDetails("x", "y", "ghost"))
}

func TestDeleteUserIdempotent(t *testing.T) {
	setup(t)
	defer teardown()

	service := UserService{}
	_, err := service.CreateUser("gone", "", model.TypeDeveloper, "")
	require.NoError(t, err)

	require.NoError(t, service.DeleteUser("gone"))
	before := countUsers(t)
	assert.NoError(t, service.DeleteUser("gone"))
	assert.NoError(t, service.DeleteUser("missing"))
	assert.Equal(t, before, countUsers(t))
}

func TestGetUserByTeam(t *testing.T) {
	setup(t)
	defer teardown()

	service := UserService{}
	_, err := service.CreateUser("henry", "platform", model.TypeDeveloper, "")
	require.NoError(t, err)
	_, err = service.CreateUser("iris", "mobile", model.TypeDeveloper, "")
	require.NoError(t, err)

	users, err := service.GetUserByTeam("platform")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "henry", users[0].Username)
}
