package service

import (
	"testing"
	"time"

	"github.com/Bruddles/FanaticsSupportRota/database"
	"github.com/Bruddles/FanaticsSupportRota/database/model"
	"github.com/Bruddles/FanaticsSupportRota/util/dates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storageDate(daysFromNow int) string {
	return time.Now().AddDate(0, 0, daysFromNow).Format(dates.StorageLayout)
}

func fetchSlot(t *testing.T, id int) model.SupportTeam {
	var slot model.SupportTeam
	require.NoError(t, database.GetDB().First(&slot, id).Error)
	return slot
}

func onlySlotId(t *testing.T) int {
	var slots []model.SupportTeam
	require.NoError(t, database.GetDB().Find(&slots).Error)
	require.Len(t, slots, 1)
	return slots[0].Id
}

func TestAddAndGetSupportTeams(t *testing.T) {
	setup(t)
	defer teardown()

	service := SupportTeamService{}
	start := storageDate(0)
	end := storageDate(6)

	require.NoError(t, service.AddSupportTeam(start, end, "alice", "bob"))

	teams, err := service.GetSupportTeams(16)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, dates.ToDisplay(start), teams[0].DateStart)
	assert.Equal(t, dates.ToDisplay(end), teams[0].DateEnd)
	assert.Equal(t, "alice", teams[0].Developer1)
	assert.Equal(t, "bob", teams[0].Developer2)
}

func TestAddSupportTeamValidation(t *testing.T) {
	setup(t)
	defer teardown()

	service := SupportTeamService{}

	assert.Error(t, service.AddSupportTeam("07-03-2024", "2024-03-13", "", ""))
	assert.Error(t, service.AddSupportTeam("2024-03-13", "2024-03-07", "", ""))
	assert.Error(t, service.AddSupportTeam("not-a-date", "2024-03-07", "", ""))
}

func TestAddDevToSupportTeamStateMachine(t *testing.T) {
	setup(t)
	defer teardown()

	service := SupportTeamService{}

	// an entirely empty slot cannot be filled through assignment
	require.NoError(t, service.AddSupportTeam(storageDate(0), storageDate(6), "", ""))
	id := onlySlotId(t)
	require.NoError(t, service.AddDevToSupportTeam("carol", id))
	slot := fetchSlot(t, id)
	assert.Empty(t, slot.Developer1)
	assert.Empty(t, slot.Developer2)

	// a half-filled slot takes the new developer in the open half
	require.NoError(t, database.GetDB().Model(&model.SupportTeam{}).
		Where("id = ?", id).Update("developer_1", "dave").Error)
	require.NoError(t, service.AddDevToSupportTeam("carol", id))
	slot = fetchSlot(t, id)
	assert.Equal(t, "dave", slot.Developer1)
	assert.Equal(t, "carol", slot.Developer2)

	// a full slot is left alone
	require.NoError(t, service.AddDevToSupportTeam("erin", id))
	slot = fetchSlot(t, id)
	assert.Equal(t, "dave", slot.Developer1)
	assert.Equal(t, "carol", slot.Developer2)
}

func TestAddDevFillsFirstSlot(t *testing.T) {
	setup(t)
	defer teardown()

	service := SupportTeamService{}
	require.NoError(t, service.AddSupportTeam(storageDate(0), storageDate(6), "", "bob"))
	id := onlySlotId(t)

	require.NoError(t, service.AddDevToSupportTeam("alice", id))
	slot := fetchSlot(t, id)
	assert.Equal(t, "alice", slot.Developer1)
	assert.Equal(t, "bob", slot.Developer2)
}

func TestRemoveDevFromSupportTeam(t *testing.T) {
	setup(t)
	defer teardown()

	service := SupportTeamService{}
	require.NoError(t, service.AddSupportTeam(storageDate(0), storageDate(6), "dave", "carol"))
	id := onlySlotId(t)

	require.NoError(t, service.RemoveDevFromSupportTeam("dave", id))
	slot := fetchSlot(t, id)
	assert.Empty(t, slot.Developer1)
	assert.Equal(t, "carol", slot.Developer2)

	// removing the same developer again is a no-op
	require.NoError(t, service.RemoveDevFromSupportTeam("dave", id))
	slot = fetchSlot(t, id)
	assert.Empty(t, slot.Developer1)
	assert.Equal(t, "carol", slot.Developer2)

	require.NoError(t, service.RemoveDevFromSupportTeam("carol", id))
	slot = fetchSlot(t, id)
	assert.Empty(t, slot.Developer2)
}

func TestRemoveOldSupportTeam(t *testing.T) {
	setup(t)
	defer teardown()

	service := SupportTeamService{}
	db := database.GetDB()

	// inserted directly: AddSupportTeam is for current data, this row is stale
	old := &model.SupportTeam{DateStart: "2020-01-06", DateEnd: "2020-01-12"}
	require.NoError(t, db.Create(old).Error)
	require.NoError(t, service.AddSupportTeam(storageDate(0), storageDate(6), "", ""))

	cutoff := storageDate(-21)
	require.NoError(t, service.RemoveOldSupportTeam(cutoff))

	var remaining []model.SupportTeam
	require.NoError(t, db.Find(&remaining).Error)
	for _, slot := range remaining {
		assert.GreaterOrEqual(t, slot.DateEnd, cutoff)
	}
	assert.Len(t, remaining, 1)
}

func TestDelSupportTeamIdempotent(t *testing.T) {
	setup(t)
	defer teardown()

	service := SupportTeamService{}
	require.NoError(t, service.AddSupportTeam(storageDate(0), storageDate(6), "", ""))
	id := onlySlotId(t)

	require.NoError(t, service.DelSupportTeam(id))
	assert.NoError(t, service.DelSupportTeam(id))

	var count int64
	require.NoError(t, database.GetDB().Model(model.SupportTeam{}).Count(&count).Error)
	assert.Zero(t, count)
}
