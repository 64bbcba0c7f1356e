package service

import (
	"strings"
	"time"

	"github.com/Bruddles/FanaticsSupportRota/database"
	"github.com/Bruddles/FanaticsSupportRota/database/model"
	"github.com/Bruddles/FanaticsSupportRota/util/common"
	"github.com/Bruddles/FanaticsSupportRota/util/dates"
)

type SupportTeamService struct{}

// GetSupportTeams returns the rota slots falling inside the display window
// for the given number of weeks, with both dates transposed to DD-MM-YYYY.
// Returned records are snapshots; mutating them touches nothing stored.
func (s *SupportTeamService) GetSupportTeams(weeks int) ([]model.SupportTeam, error) {
	lower, upper := dates.RotaWindow(time.Now(), weeks)

	db := database.GetDB()
	var teams []model.SupportTeam
	err := db.Model(model.SupportTeam{}).
		Where("date_start >= ? AND date_end <= ?", lower, upper).
		Find(&teams).
		Error
	if err != nil {
		return nil, err
	}
	for i := range teams {
		teams[i].DateStart = dates.ToDisplay(teams[i].DateStart)
		teams[i].DateEnd = dates.ToDisplay(teams[i].DateEnd)
	}
	return teams, nil
}

// AddSupportTeam inserts a new rota slot. Either developer field may be
// blank. Dates must be storage-format and the range must not be inverted.
func (s *SupportTeamService) AddSupportTeam(dateStart string, dateEnd string, developer1 string, developer2 string) error {
	if !dates.IsStorageDate(dateStart) || !dates.IsStorageDate(dateEnd) {
		return common.NewErrorf("malformed date range: %q .. %q", dateStart, dateEnd)
	}
	if dateStart > dateEnd {
		return common.NewErrorf("date range starts after it ends: %s .. %s", dateStart, dateEnd)
	}

	db := database.GetDB()
	team := &model.SupportTeam{
		DateStart:  dateStart,
		DateEnd:    dateEnd,
		Developer1: strings.TrimSpace(developer1),
		Developer2: strings.TrimSpace(developer2),
	}
	return db.Create(team).Error
}

// DelSupportTeam deletes a slot by id; a missing id is a no-op.
func (s *SupportTeamService) DelSupportTeam(id int) error {
	db := database.GetDB()
	return db.Where("id = ?", id).Delete(&model.SupportTeam{}).Error
}

// AddDevToSupportTeam fills the open half of a partially filled slot with
// developer. A fully empty slot is left untouched (slots get their first
// member through AddSupportTeam), and so is a full one. Each fill is a single
// conditional update, so two concurrent calls cannot overwrite each other.
func (s *SupportTeamService) AddDevToSupportTeam(developer string, id int) error {
	developer = strings.TrimSpace(developer)
	if developer == "" {
		return common.NewError("developer can not be empty")
	}

	db := database.GetDB()
	result := db.Model(model.SupportTeam{}).
		Where("id = ? AND developer_1 = '' AND developer_2 <> ''", id).
		Update("developer_1", developer)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	return db.Model(model.SupportTeam{}).
		Where("id = ? AND developer_2 = '' AND developer_1 <> ''", id).
		Update("developer_2", developer).
		Error
}

// RemoveDevFromSupportTeam clears whichever developer field of the slot
// matches developer exactly; no match is a no-op.
func (s *SupportTeamService) RemoveDevFromSupportTeam(developer string, id int) error {
	db := database.GetDB()
	result := db.Model(model.SupportTeam{}).
		Where("id = ? AND developer_1 = ?", id, developer).
		Update("developer_1", "")
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	return db.Model(model.SupportTeam{}).
		Where("id = ? AND developer_2 = ?", id, developer).
		Update("developer_2", "").
		Error
}

// RemoveOldSupportTeam deletes every slot that ended before cutoffDate.
func (s *SupportTeamService) RemoveOldSupportTeam(cutoffDate string) error {
	db := database.GetDB()
	return db.Where("date_end < ?", cutoffDate).Delete(&model.SupportTeam{}).Error
}
