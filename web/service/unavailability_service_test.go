package service

import (
	"testing"

	"github.com/Bruddles/FanaticsSupportRota/database"
	"github.com/Bruddles/FanaticsSupportRota/database/model"
	"github.com/Bruddles/FanaticsSupportRota/util/dates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnavailabilityLifecycle(t *testing.T) {
	setup(t)
	defer teardown()

	service := UnavailabilityService{}
	start := storageDate(1)
	end := storageDate(3)

	require.NoError(t, service.AddUnavailability("alice", start, end))
	require.NoError(t, service.AddUnavailability("bob", start, end))

	records, err := service.GetUnavailability("alice")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, dates.ToDisplay(start), records[0].DateStart)
	assert.Equal(t, dates.ToDisplay(end), records[0].DateEnd)

	all, err := service.GetAllUnavailability()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, service.DelUnavailability(records[0].Id))
	assert.NoError(t, service.DelUnavailability(records[0].Id))
}

func TestUnavailabilityValidation(t *testing.T) {
	setup(t)
	defer teardown()

	service := UnavailabilityService{}
	assert.Error(t, service.AddUnavailability("", storageDate(0), storageDate(1)))
	assert.Error(t, service.AddUnavailability("alice", "03-07-2024", storageDate(1)))
	assert.Error(t, service.AddUnavailability("alice", storageDate(2), storageDate(1)))
}

func TestRemoveOldRecords(t *testing.T) {
	setup(t)
	defer teardown()

	service := UnavailabilityService{}
	db := database.GetDB()

	require.NoError(t, db.Create(&model.Unavailability{
		Username: "alice", DateStart: "2020-01-06", DateEnd: "2020-01-12",
	}).Error)
	require.NoError(t, service.AddUnavailability("alice", storageDate(1), storageDate(3)))

	cutoff := storageDate(-7)
	require.NoError(t, service.RemoveOldRecords(cutoff))

	var remaining []model.Unavailability
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.GreaterOrEqual(t, remaining[0].DateEnd, cutoff)
}
