package service

import (
	"strings"

	"github.com/Bruddles/FanaticsSupportRota/database"
	"github.com/Bruddles/FanaticsSupportRota/database/model"
	"github.com/Bruddles/FanaticsSupportRota/util/common"
)

type DevTeamService struct{}

// AddDevTeam creates a development team by name.
func (s *DevTeamService) AddDevTeam(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return common.NewError("team name can not be empty")
	}
	db := database.GetDB()
	return db.Create(&model.DevelopmentTeam{Name: name}).Error
}

// DelDevTeam deletes a team by name; a missing team is a no-op. Users keep
// their development_team value, membership is not cascaded.
func (s *DevTeamService) DelDevTeam(name string) error {
	db := database.GetDB()
	return db.Where("name = ?", name).Delete(&model.DevelopmentTeam{}).Error
}

// GetDevelopmentTeams returns every team.
func (s *DevTeamService) GetDevelopmentTeams() ([]model.DevelopmentTeam, error) {
	db := database.GetDB()

	var teams []model.DevelopmentTeam
	err := db.Model(model.DevelopmentTeam{}).Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// JoinDevTeam assigns username to teamName; a missing username is a no-op.
func (s *DevTeamService) JoinDevTeam(teamName string, username string) error {
	db := database.GetDB()
	return db.Model(model.User{}).
		Where("username = ?", username).
		Update("development_team", teamName).
		Error
}
