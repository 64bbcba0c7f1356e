package service

import (
	"strings"

	"github.com/Bruddles/FanaticsSupportRota/database"
	"github.com/Bruddles/FanaticsSupportRota/database/model"
	"github.com/Bruddles/FanaticsSupportRota/util/common"
	"github.com/Bruddles/FanaticsSupportRota/util/dates"
)

type UnavailabilityService struct{}

// AddUnavailability records that username cannot take rota duty over the
// given inclusive date range.
func (s *UnavailabilityService) AddUnavailability(username string, dateStart string, dateEnd string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return common.NewError("username can not be empty")
	}
	if !dates.IsStorageDate(dateStart) || !dates.IsStorageDate(dateEnd) {
		return common.NewErrorf("malformed date range: %q .. %q", dateStart, dateEnd)
	}
	if dateStart > dateEnd {
		return common.NewErrorf("date range starts after it ends: %s .. %s", dateStart, dateEnd)
	}

	db := database.GetDB()
	record := &model.Unavailability{
		Username:  username,
		DateStart: dateStart,
		DateEnd:   dateEnd,
	}
	return db.Create(record).Error
}

// GetUnavailability returns the stored ranges for one user, display-formatted.
func (s *UnavailabilityService) GetUnavailability(username string) ([]model.Unavailability, error) {
	db := database.GetDB()

	var records []model.Unavailability
	err := db.Model(model.Unavailability{}).
		Where("username = ?", username).
		Find(&records).
		Error
	if err != nil {
		return nil, err
	}
	return displayUnavailability(records), nil
}

// GetAllUnavailability returns every stored range, display-formatted.
func (s *UnavailabilityService) GetAllUnavailability() ([]model.Unavailability, error) {
	db := database.GetDB()

	var records []model.Unavailability
	err := db.Model(model.Unavailability{}).Find(&records).Error
	if err != nil {
		return nil, err
	}
	return displayUnavailability(records), nil
}

// DelUnavailability deletes a record by id; a missing id is a no-op.
func (s *UnavailabilityService) DelUnavailability(id int) error {
	db := database.GetDB()
	return db.Where("id = ?", id).Delete(&model.Unavailability{}).Error
}

// RemoveOldRecords deletes every range that ended before cutoffDate.
func (s *UnavailabilityService) RemoveOldRecords(cutoffDate string) error {
	db := database.GetDB()
	return db.Where("date_end < ?", cutoffDate).Delete(&model.Unavailability{}).Error
}

func displayUnavailability(records []model.Unavailability) []model.Unavailability {
	for i := range records {
		records[i].DateStart = dates.ToDisplay(records[i].DateStart)
		records[i].DateEnd = dates.ToDisplay(records[i].DateEnd)
	}
	return records
}
