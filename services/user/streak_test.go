package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextStreak(t *testing.T) {
	now := time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)
	day := 24 * time.Hour

	tests := []struct {
		name        string
		lastLogin   time.Time
		streak      int
		wantStreak  int
		wantChanged bool
	}{
		{"first login", time.Time{}, 0, 1, true},
		{"same day", now.Add(-2 * time.Hour), 4, 4, false},
		{"same day midnight", now.Truncate(day), 4, 4, false},
		{"yesterday", now.Add(-day), 4, 5, true},
		{"two days ago", now.Add(-2 * day), 4, 1, true},
		{"week gap", now.Add(-7 * day), 12, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := nextStreak(tt.lastLogin, tt.streak, now)
			assert.Equal(t, tt.wantStreak, got)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}

func TestNextStreakIgnoresTimezoneOffsets(t *testing.T) {
	now := time.Date(2025, 6, 15, 1, 0, 0, 0, time.UTC)
	loc := time.FixedZone("UTC+5", 5*3600)

	// Same UTC day expressed in another zone still counts as today.
	lastLogin := time.Date(2025, 6, 15, 8, 0, 0, 0, loc)
	got, changed := nextStreak(lastLogin, 3, now)
	assert.Equal(t, 3, got)
	assert.False(t, changed)
}
