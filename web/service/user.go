// Package service implements the data-access operations of the support rota
// panel on top of the shared gorm handle. Absent-row mutations are silent
// no-ops; only duplicate creates and explicit lookups surface errors.
package service

import (
	"errors"
	"strings"

	"github.com/Bruddles/FanaticsSupportRota/database"
	"github.com/Bruddles/FanaticsSupportRota/database/model"
	"github.com/Bruddles/FanaticsSupportRota/logger"
	"github.com/Bruddles/FanaticsSupportRota/util/common"
	"github.com/Bruddles/FanaticsSupportRota/util/crypto"
	"github.com/Bruddles/FanaticsSupportRota/util/random"
)

// ErrUsernameTaken reports a create against an existing username. Callers
// must be able to tell it apart from a generated password, so it is a
// sentinel rather than a message string.
var ErrUsernameTaken = errors.New("username in use")

type UserService struct{}

// GetAllUsers returns every developer account without password material.
func (s *UserService) GetAllUsers() ([]model.User, error) {
	db := database.GetDB()

	var users []model.User
	err := db.Model(model.User{}).
		Where("type = ?", model.TypeDeveloper).
		Find(&users).
		Error
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

// Login verifies password against the stored hash for username. An unknown
// username still burns a hash verification so the caller cannot distinguish
// absent accounts from wrong passwords by timing.
func (s *UserService) Login(username string, password string) bool {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if database.IsNotFound(err) {
		return crypto.CheckAbsentUser(password)
	} else if err != nil {
		logger.Warning("login lookup err:", err)
		return false
	}

	return crypto.CheckPasswordHash(user.Password, password)
}

// GetUserType returns the stored role for username, or a not-found error.
func (s *UserService) GetUserType(username string) (string, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Select("type").
		Where("username = ?", username).
		First(user).
		Error
	if err != nil {
		return "", err
	}
	return user.Type, nil
}

// CreateUser inserts a new account with a generated initial password and
// returns the plaintext so it can be shown once. Duplicate usernames
// (case-sensitive exact match) return ErrUsernameTaken with no insert.
func (s *UserService) CreateUser(username string, team string, userType string, experience string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", common.NewError("username can not be empty")
	}

	db := database.GetDB()

	var count int64
	err := db.Model(model.User{}).
		Where("username = ?", username).
		Count(&count).
		Error
	if err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrUsernameTaken
	}

	password := random.Password()
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return "", err
	}

	user := &model.User{
		Username:        username,
		Password:        hash,
		DevelopmentTeam: strings.TrimSpace(team),
		Type:            strings.TrimSpace(userType),
		Experience:      strings.TrimSpace(experience),
	}
	if err := db.Create(user).Error; err != nil {
		return "", err
	}
	return password, nil
}

// DeleteUser removes the account; deleting a missing username is a no-op.
func (s *UserService) DeleteUser(username string) error {
	db := database.GetDB()
	return db.Where("username = ?", username).Delete(&model.User{}).Error
}

// ChangePassword hashes and stores a new password for username. A missing
// username is a no-op.
func (s *UserService) ChangePassword(password string, username string) error {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}
	db := database.GetDB()
	return db.Model(model.User{}).
		Where("username = ?", username).
		Update("password", hash).
		Error
}

// UpdateUserDetails rewrites the team and experience fields for username.
// A missing username is a no-op.
func (s *UserService) UpdateUserDetails(devTeam string, experience string, username string) error {
	db := database.GetDB()
	return db.Model(model.User{}).
		Where("username = ?", username).
		Updates(map[string]any{"development_team": devTeam, "experience": experience}).
		Error
}

// GetUserByTeam returns the users belonging to the given development team.
func (s *UserService) GetUserByTeam(team string) ([]model.User, error) {
	db := database.GetDB()

	var users []model.User
	err := db.Model(model.User{}).
		Where("development_team = ?", team).
		Find(&users).
		Error
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

// GetUserDetails returns a single developer account, or a not-found error
// when the username is absent or not a developer.
func (s *UserService) GetUserDetails(username string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ? AND type = ?", username, model.TypeDeveloper).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}
