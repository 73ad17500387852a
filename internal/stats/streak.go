package stats

import (
	"sort"
	"time"

	"github.com/MKhiriev/go-daily-diary/models"
)

// maxStreakGap is the largest gap between consecutive dates that keeps a
// run going. Exactly one day must not break it; two days must.
const maxStreakGap = 36 * time.Hour

// CurrentStreak counts consecutive days in dates ending at today. It is 0
// when today itself is absent.
func CurrentStreak(dates map[string]struct{}, today time.Time) int {
	streak := 0
	for day := calendarDay(today); ; day = day.AddDate(0, 0, -1) {
		if _, ok := dates[models.FormatDate(day)]; !ok {
			return streak
		}
		streak++
	}
}

// LongestStreak returns the longest run of consecutive days in dates.
// Unparseable dates are ignored.
func LongestStreak(dates map[string]struct{}) int {
	days := make([]time.Time, 0, len(dates))
	for date := range dates {
		day, err := models.ParseDate(date)
		if err != nil {
			continue
		}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})

	longest, run := 0, 0
	for i := range days {
		run++
		if i == len(days)-1 || days[i].Sub(days[i+1]) > maxStreakGap {
			longest = max(longest, run)
			run = 0
		}
	}
	return longest
}
