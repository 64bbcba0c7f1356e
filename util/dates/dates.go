// Package dates handles the rota's two date representations and its week
// window arithmetic. Rows store dates as YYYY-MM-DD strings, so lexicographic
// comparison matches chronological order.
package dates

import (
	"strings"
	"time"
)

// StorageLayout is the format dates are persisted in.
const StorageLayout = "2006-01-02"

// ToDisplay converts a storage date (YYYY-MM-DD) to display order
// (DD-MM-YYYY) by reversing its components. No parsing is involved, so the
// value can never shift across a timezone boundary.
func ToDisplay(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// ToStorage is the inverse transposition, display order back to storage order.
func ToStorage(date string) string {
	return ToDisplay(date)
}

// IsStorageDate reports whether s is a well-formed YYYY-MM-DD calendar date.
func IsStorageDate(s string) bool {
	_, err := time.Parse(StorageLayout, s)
	return err == nil
}

// PrevMonday returns the Monday of the calendar week before the one
// containing t.
func PrevMonday(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -daysSinceMonday-7)
}

// UpcomingSunday returns the next Sunday on or after t.
func UpcomingSunday(t time.Time) time.Time {
	daysUntilSunday := (7 - int(t.Weekday())) % 7
	return t.AddDate(0, 0, daysUntilSunday)
}

// RotaWindow computes the inclusive storage-format bounds of a rota view of
// the given number of weeks, anchored at t. The lower bound is the previous
// week's Monday; the upper bound is the upcoming Sunday pushed out weeks-1
// further weeks. Odd week counts are rounded up; callers already do this, but
// the window enforces it anyway.
func RotaWindow(t time.Time, weeks int) (string, string) {
	if weeks < 2 {
		weeks = 2
	}
	if weeks%2 != 0 {
		weeks++
	}
	lower := PrevMonday(t)
	upper := UpcomingSunday(t).AddDate(0, 0, (weeks-1)*7)
	return lower.Format(StorageLayout), upper.Format(StorageLayout)
}
