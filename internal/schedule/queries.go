package schedule

import (
	"sort"

	"github.com/weekendly/weekendly/internal/models"
)

// SortByTime returns a new slice sorted ascending by start time. The sort is
// stable: activities sharing a start time keep their original relative order.
func SortByTime(activities []models.ScheduledActivity) []models.ScheduledActivity {
	sorted := make([]models.ScheduledActivity, len(activities))
	copy(sorted, activities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return TimeToMinutes(sorted[i].Time) < TimeToMinutes(sorted[j].Time)
	})
	return sorted
}

// TotalDuration sums the durations of all activities, in minutes.
func TotalDuration(activities []models.ScheduledActivity) int {
	total := 0
	for _, a := range activities {
		total += a.Duration
	}
	return total
}

// ByCategory filters to activities in the given category, preserving order.
func ByCategory(activities []models.ScheduledActivity, category string) []models.ScheduledActivity {
	out := []models.ScheduledActivity{}
	for _, a := range activities {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

// ByMood filters to activities with the given mood, preserving order.
func ByMood(activities []models.ScheduledActivity, mood models.Mood) []models.ScheduledActivity {
	out := []models.ScheduledActivity{}
	for _, a := range activities {
		if a.Mood == mood {
			out = append(out, a)
		}
	}
	return out
}

// ByStatus filters to activities with the given status, preserving order.
func ByStatus(activities []models.ScheduledActivity, status models.Status) []models.ScheduledActivity {
	out := []models.ScheduledActivity{}
	for _, a := range activities {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out
}
