package service

import (
	"testing"
	"time"
)

func TestNextStreak(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, time.March, d, 12, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name         string
		lastActivity time.Time
		now          time.Time
		current      int
		want         int
	}{
		{"first ever activity", time.Time{}, day(10), 0, 1},
		{"same day keeps count", day(10), day(10), 4, 4},
		{"next day extends", day(10), day(11), 4, 5},
		{"two day gap resets", day(10), day(12), 4, 1},
		{"week gap resets", day(3), day(10), 9, 1},
		{"zero streak with recorded activity restarts", day(10), day(10), 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextStreak(tt.lastActivity, tt.now, tt.current); got != tt.want {
				t.Errorf("NextStreak(%v, %v, %d) = %d, want %d", tt.lastActivity, tt.now, tt.current, got, tt.want)
			}
		})
	}
}
