package schedule

import "github.com/weekendly/weekendly/internal/models"

// Conflict reports a pair of activities on the same day whose time intervals
// overlap, along with the size of the overlap in minutes.
type Conflict struct {
	First          models.ScheduledActivity
	Second         models.ScheduledActivity
	OverlapMinutes int
}

// RangesOverlap reports whether the half-open intervals [start1, end1) and
// [start2, end2) intersect. Touching endpoints do not overlap: an activity
// ending at 10:00 does not conflict with one starting at 10:00.
func RangesOverlap(start1, end1, start2, end2 int) bool {
	return start1 < end2 && start2 < end1
}

// CheckTimeConflicts sorts the activities chronologically (stable, so
// equal-start entries keep their relative order) and flags each consecutive
// pair whose intervals overlap. Only adjacent pairs in the sorted order are
// examined; an interval long enough to overlap a non-adjacent successor is
// under-reported. Consumers depend on the resulting conflict count, so this
// stays the default. Use CheckTimeConflictsStrict for full pairwise
// detection.
func CheckTimeConflicts(activities []models.ScheduledActivity) []Conflict {
	sorted := SortByTime(activities)
	conflicts := []Conflict{}

	for i := 0; i < len(sorted)-1; i++ {
		current := sorted[i]
		next := sorted[i+1]

		currentEnd := TimeToMinutes(current.Time) + current.Duration
		nextStart := TimeToMinutes(next.Time)

		if currentEnd > nextStart {
			conflicts = append(conflicts, Conflict{
				First:          current,
				Second:         next,
				OverlapMinutes: currentEnd - nextStart,
			})
		}
	}

	return conflicts
}

// CheckTimeConflictsStrict examines every pair of activities and reports all
// overlaps, including ones the adjacent-pair scan misses. Pairs are reported
// in sorted-start order.
func CheckTimeConflictsStrict(activities []models.ScheduledActivity) []Conflict {
	sorted := SortByTime(activities)
	conflicts := []Conflict{}

	for i := 0; i < len(sorted); i++ {
		iStart := TimeToMinutes(sorted[i].Time)
		iEnd := iStart + sorted[i].Duration
		for j := i + 1; j < len(sorted); j++ {
			jStart := TimeToMinutes(sorted[j].Time)
			jEnd := jStart + sorted[j].Duration
			if !RangesOverlap(iStart, iEnd, jStart, jEnd) {
				continue
			}
			overlap := iEnd - jStart
			if jEnd-jStart < overlap {
				overlap = jEnd - jStart
			}
			conflicts = append(conflicts, Conflict{
				First:          sorted[i],
				Second:         sorted[j],
				OverlapMinutes: overlap,
			})
		}
	}

	return conflicts
}
