// Package job contains the background tasks scheduled by the web server.
package job

import (
	"time"

	"github.com/Bruddles/FanaticsSupportRota/logger"
	"github.com/Bruddles/FanaticsSupportRota/util/dates"
	"github.com/Bruddles/FanaticsSupportRota/web/service"
)

// RetentionJob prunes expired rota slots and unavailability ranges. The same
// sweep runs before every rota read; the scheduled run keeps the tables small
// on quiet days when nobody opens the panel.
type RetentionJob struct {
	supportTeamService    service.SupportTeamService
	unavailabilityService service.UnavailabilityService
}

func NewRetentionJob() *RetentionJob {
	return &RetentionJob{}
}

// Run deletes unavailability rows that ended before last Monday and rota
// slots more than three weeks gone.
func (j *RetentionJob) Run() {
	logger.Debug("retention job started")

	lastMonday := dates.PrevMonday(time.Now())
	if err := j.unavailabilityService.RemoveOldRecords(lastMonday.Format(dates.StorageLayout)); err != nil {
		logger.Warning("failed to prune unavailability records:", err)
	}

	supportCutoff := lastMonday.AddDate(0, 0, -14)
	if err := j.supportTeamService.RemoveOldSupportTeam(supportCutoff.Format(dates.StorageLayout)); err != nil {
		logger.Warning("failed to prune support rota:", err)
	} else {
		logger.Debugf("retention completed (cutoff %s)", supportCutoff.Format(dates.StorageLayout))
	}
}
