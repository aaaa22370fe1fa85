package user

import (
	"time"

	"github.com/SachinKokare07/partner-app/models"
	"github.com/SachinKokare07/partner-app/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// nextStreak computes the consecutive-day login counter. Comparisons are
// date-only in UTC: a second login on the same day changes nothing, a login
// the day after the last one increments, and any longer gap (or a first
// login) resets to 1. The bool reports whether anything changed.
func nextStreak(lastLogin time.Time, streak int, now time.Time) (int, bool) {
	today := now.UTC().Truncate(24 * time.Hour)

	if lastLogin.IsZero() {
		return 1, true
	}

	last := lastLogin.UTC().Truncate(24 * time.Hour)
	switch {
	case last.Equal(today):
		return streak, false
	case last.Equal(today.AddDate(0, 0, -1)):
		return streak + 1, true
	default:
		return 1, true
	}
}

// updateLoginStreak applies the streak rule for a fresh session. Best-effort:
// a failed write is logged and ignored so it never blocks session
// establishment. Returns the streak value the session should report.
func (s *DefaultUserService) updateLoginStreak(usr *models.User) int {
	now := time.Now()
	streak, changed := nextStreak(usr.LastLoginDate, usr.Streak, now)
	if !changed {
		return streak
	}

	fields := bson.M{
		"last_login_date": now.UTC().Truncate(24 * time.Hour),
		"streak":          streak,
	}
	if err := s.Repo.UpdateFields(usr.ID, fields); err != nil {
		utils.GetLogger().Warn("updateLoginStreak: failed to persist streak",
			zap.String("userID", usr.ID), zap.Error(err))
		return usr.Streak
	}
	return streak
}
