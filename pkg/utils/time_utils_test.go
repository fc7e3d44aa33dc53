package utils

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		first time.Time
		last  time.Time
		want  int
	}{
		{name: "six days apart", first: base, last: base.AddDate(0, 0, 6), want: 6},
		{name: "same instant clamps to one", first: base, last: base, want: 1},
		{name: "hours apart clamps to one", first: base, last: base.Add(6 * time.Hour), want: 1},
		{name: "partial day truncates", first: base, last: base.Add(36 * time.Hour), want: 1},
		{name: "reversed order clamps to one", first: base.AddDate(0, 0, 3), last: base, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.first, tt.last); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}
