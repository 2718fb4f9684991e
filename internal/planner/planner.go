// Package planner owns the mutable weekend state. It is the explicit state
// container the browser context/reducer became: a single-writer repository
// that serializes mutations, asks the pure schedule core to validate and
// choose times, and persists through a storage Provider after each change.
package planner

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/weekendly/weekendly/internal/catalog"
	"github.com/weekendly/weekendly/internal/constants"
	"github.com/weekendly/weekendly/internal/logger"
	"github.com/weekendly/weekendly/internal/models"
	"github.com/weekendly/weekendly/internal/schedule"
	"github.com/weekendly/weekendly/internal/storage"
	"github.com/weekendly/weekendly/internal/validation"
)

var (
	// ErrNotFound is returned when the id does not exist on the given day.
	ErrNotFound = errors.New("activity not found")
	// ErrNoSlot is returned when the search window has no free slot; callers
	// surface this as a user-facing "could not add activity".
	ErrNoSlot = errors.New("no available time slot")
	// ErrConflict is returned when a retime would overlap another activity.
	ErrConflict = errors.New("time conflicts with another activity")
)

// Planner mediates every mutation of the weekend schedule. All methods are
// safe for concurrent use; the engine itself stays pure underneath.
type Planner struct {
	mu       sync.Mutex
	store    storage.Provider
	settings models.Settings
	weekend  map[models.Day][]models.ScheduledActivity
}

// New loads the stored weekend and settings into a ready planner.
func New(store storage.Provider) (*Planner, error) {
	weekend, err := store.GetWeekend()
	if err != nil {
		return nil, fmt.Errorf("failed to load weekend: %w", err)
	}
	settings, err := store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &Planner{store: store, settings: settings, weekend: weekend}, nil
}

// Settings returns the current planning preferences.
func (p *Planner) Settings() models.Settings {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.settings
}

// UpdateSettings persists new preferences.
func (p *Planner) UpdateSettings(settings models.Settings) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.store.SaveSettings(settings); err != nil {
		return err
	}
	p.settings = settings
	return nil
}

// window derives the slot-search window from settings, falling back to the
// defaults when the stored day boundaries are unusable. Boundaries keep
// their minutes, so a 06:30 day start searches from 06:30.
func (p *Planner) window() schedule.SearchWindow {
	w := schedule.DefaultSearchWindow
	if validation.IsValidTime(p.settings.DayStart) {
		w.StartMin = schedule.TimeToMinutes(p.settings.DayStart)
	}
	if validation.IsValidTime(p.settings.DayEnd) {
		w.EndMin = schedule.TimeToMinutes(p.settings.DayEnd)
	}
	if p.settings.SlotIntervalMin > 0 {
		w.IntervalMin = p.settings.SlotIntervalMin
	}
	return w
}

// dayDate returns the stored calendar date for the day, empty when the
// weekend is not pinned to dates.
func (p *Planner) dayDate(day models.Day) string {
	if day == models.DaySunday {
		return p.settings.SundayDate
	}
	return p.settings.SaturdayDate
}

// now reads the clock in the configured timezone. An unloadable zone falls
// back to the system zone rather than failing a read-only display path.
func (p *Planner) now() time.Time {
	loc, err := p.settings.Location()
	if err != nil {
		loc = time.Local
	}
	return time.Now().In(loc)
}

// DayActivities returns the day's activities in chronological order.
func (p *Planner) DayActivities(day models.Day) []models.ScheduledActivity {
	p.mu.Lock()
	defer p.mu.Unlock()
	return schedule.SortByTime(p.weekend[day])
}

// Conflicts reports the day's overlapping pairs using the default
// adjacent-pair scan.
func (p *Planner) Conflicts(day models.Day) []schedule.Conflict {
	p.mu.Lock()
	defer p.mu.Unlock()
	return schedule.CheckTimeConflicts(p.weekend[day])
}

// ConflictsStrict reports every overlapping pair on the day.
func (p *Planner) ConflictsStrict(day models.Day) []schedule.Conflict {
	p.mu.Lock()
	defer p.mu.Unlock()
	return schedule.CheckTimeConflictsStrict(p.weekend[day])
}

// NextAvailableTime finds a free start time on the day for the duration,
// trying the preferred time first.
func (p *Planner) NextAvailableTime(day models.Day, durationMin int, preferred string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return schedule.NextAvailableTimeIn(p.window(), p.weekend[day], durationMin, preferred)
}

// Elapsed reports which of the day's placements have already started,
// judged against the stored weekend date in the configured timezone. A day
// without a stored date never counts as elapsed.
func (p *Planner) Elapsed(day models.Day) map[string]bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.elapsed(day, p.now())
}

func (p *Planner) elapsed(day models.Day, now time.Time) map[string]bool {
	date := p.dayDate(day)
	if date == "" {
		return nil
	}

	out := make(map[string]bool)
	switch {
	case schedule.IsDateInPast(date, now):
		for _, a := range p.weekend[day] {
			out[a.ID] = true
		}
	case schedule.IsToday(date, now):
		for _, a := range p.weekend[day] {
			if schedule.IsTimeInPast(a.Time, now) {
				out[a.ID] = true
			}
		}
	}
	return out
}

// TimeSlotLabels lists the pickable start times on the day over the settings
// window. Slots that have already passed are dropped when the stored date is
// today; a day whose date lies wholly in the past has no pickable slots.
func (p *Planner) TimeSlotLabels(day models.Day) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.timeSlotLabels(day, p.now())
}

func (p *Planner) timeSlotLabels(day models.Day, now time.Time) []string {
	w := p.window()
	slots := schedule.TimeSlots(w.StartMin, w.EndMin, w.IntervalMin)

	date := p.dayDate(day)
	if date == "" {
		return slots
	}
	if schedule.IsDateInPast(date, now) {
		return nil
	}
	if !schedule.IsToday(date, now) {
		return slots
	}

	open := slots[:0]
	for _, s := range slots {
		if !schedule.IsTimeInPast(s, now) {
			open = append(open, s)
		}
	}
	return open
}

// TotalDuration sums the day's scheduled minutes.
func (p *Planner) TotalDuration(day models.Day) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return schedule.TotalDuration(p.weekend[day])
}

// ByCategory filters the day's activities chronologically by category.
func (p *Planner) ByCategory(day models.Day, category string) []models.ScheduledActivity {
	return schedule.ByCategory(p.DayActivities(day), category)
}

// ByMood filters the day's activities chronologically by mood.
func (p *Planner) ByMood(day models.Day, mood models.Mood) []models.ScheduledActivity {
	return schedule.ByMood(p.DayActivities(day), mood)
}

// ByStatus filters the day's activities chronologically by status.
func (p *Planner) ByStatus(day models.Day, status models.Status) []models.ScheduledActivity {
	return schedule.ByStatus(p.DayActivities(day), status)
}

// Add places a template on a day at an explicit time. Zero values fall back
// to the stored defaults. The placement is validated before it is committed.
func (p *Planner) Add(template catalog.Activity, day models.Day, timeStr string, mood models.Mood, status models.Status) (models.ScheduledActivity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.add(template, day, timeStr, mood, status)
}

func (p *Planner) add(template catalog.Activity, day models.Day, timeStr string, mood models.Mood, status models.Status) (models.ScheduledActivity, error) {
	if timeStr == "" {
		timeStr = constants.DefaultTime
	}
	if mood == "" {
		mood = p.settings.DefaultMood
	}
	if status == "" {
		status = p.settings.DefaultStatus
	}

	activity := models.ScheduledActivity{
		ID:          fmt.Sprintf("%s-%s", template.ID, uuid.NewString()),
		ActivityID:  template.ID,
		Name:        template.Name,
		Icon:        template.Icon,
		Description: template.Description,
		Category:    template.Category,
		Time:        timeStr,
		Duration:    template.Duration,
		Day:         day,
		Mood:        mood,
		Status:      status,
	}

	if result := validation.ValidateActivity(activity); !result.IsValid {
		return models.ScheduledActivity{}, fmt.Errorf("invalid activity: %s", strings.Join(result.Errors, "; "))
	}

	updated := append(append([]models.ScheduledActivity{}, p.weekend[day]...), activity)
	if err := p.store.SaveDay(day, updated); err != nil {
		return models.ScheduledActivity{}, err
	}
	p.weekend[day] = updated

	logger.Debug("Activity added", "id", activity.ID, "day", day, "time", timeStr)
	return activity, nil
}

// AddSmart places a template at the preferred time when free, otherwise at
// the first open slot in the search window. ErrNoSlot when the day is full.
func (p *Planner) AddSmart(template catalog.Activity, day models.Day, preferred string) (models.ScheduledActivity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	timeStr, ok := schedule.NextAvailableTimeIn(p.window(), p.weekend[day], template.Duration, preferred)
	if !ok {
		return models.ScheduledActivity{}, ErrNoSlot
	}
	return p.add(template, day, timeStr, "", "")
}

// Remove deletes a placement from a day.
func (p *Planner) Remove(day models.Day, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	activities := p.weekend[day]
	updated := make([]models.ScheduledActivity, 0, len(activities))
	found := false
	for _, a := range activities {
		if a.ID == id {
			found = true
			continue
		}
		updated = append(updated, a)
	}
	if !found {
		return ErrNotFound
	}

	if err := p.store.SaveDay(day, updated); err != nil {
		return err
	}
	p.weekend[day] = updated
	logger.Debug("Activity removed", "id", id, "day", day)
	return nil
}

// Get returns a placement by id.
func (p *Planner) Get(day models.Day, id string) (models.ScheduledActivity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, a := range p.weekend[day] {
		if a.ID == id {
			return a, nil
		}
	}
	return models.ScheduledActivity{}, ErrNotFound
}

func (p *Planner) update(day models.Day, id string, mutate func(*models.ScheduledActivity)) error {
	activities := p.weekend[day]
	updated := make([]models.ScheduledActivity, len(activities))
	copy(updated, activities)

	found := false
	for i := range updated {
		if updated[i].ID == id {
			mutate(&updated[i])
			found = true
			break
		}
	}
	if !found {
		return ErrNotFound
	}

	if err := p.store.SaveDay(day, updated); err != nil {
		return err
	}
	p.weekend[day] = updated
	return nil
}

// UpdateTime retimes a placement after checking the new interval against
// the day's other activities. ErrConflict when it would overlap.
func (p *Planner) UpdateTime(day models.Day, id, newTime string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var target *models.ScheduledActivity
	others := make([]models.ScheduledActivity, 0, len(p.weekend[day]))
	for i := range p.weekend[day] {
		if p.weekend[day][i].ID == id {
			a := p.weekend[day][i]
			target = &a
			continue
		}
		others = append(others, p.weekend[day][i])
	}
	if target == nil {
		return ErrNotFound
	}

	moved := *target
	moved.Time = newTime
	if conflicts := schedule.CheckTimeConflicts(append(others, moved)); len(conflicts) > 0 {
		return ErrConflict
	}

	return p.update(day, id, func(a *models.ScheduledActivity) { a.Time = newTime })
}

// SetMood updates a placement's mood.
func (p *Planner) SetMood(day models.Day, id string, mood models.Mood) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.update(day, id, func(a *models.ScheduledActivity) { a.Mood = mood })
}

// SetStatus sets a placement's status directly; any transition is legal.
func (p *Planner) SetStatus(day models.Day, id string, status models.Status) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.update(day, id, func(a *models.ScheduledActivity) { a.Status = status })
}

// AdvanceStatus moves a placement to the next status in the cycle and
// returns the new value.
func (p *Planner) AdvanceStatus(day models.Day, id string) (models.Status, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var next models.Status
	err := p.update(day, id, func(a *models.ScheduledActivity) {
		a.Status = a.Status.Next()
		next = a.Status
	})
	return next, err
}

// Move transfers a placement between days, keeping its time unless newTime
// is given. The day tag travels with the activity.
func (p *Planner) Move(id string, fromDay, toDay models.Day, newTime string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.move(id, fromDay, toDay, newTime)
}

func (p *Planner) move(id string, fromDay, toDay models.Day, newTime string) error {
	var target *models.ScheduledActivity
	remaining := make([]models.ScheduledActivity, 0, len(p.weekend[fromDay]))
	for _, a := range p.weekend[fromDay] {
		if a.ID == id {
			moved := a
			target = &moved
			continue
		}
		remaining = append(remaining, a)
	}
	if target == nil {
		return ErrNotFound
	}

	target.Day = toDay
	if newTime != "" {
		target.Time = newTime
	}
	dest := append(append([]models.ScheduledActivity{}, p.weekend[toDay]...), *target)

	if err := p.store.SaveDay(fromDay, remaining); err != nil {
		return err
	}
	if err := p.store.SaveDay(toDay, dest); err != nil {
		return err
	}
	p.weekend[fromDay] = remaining
	p.weekend[toDay] = dest
	logger.Debug("Activity moved", "id", id, "from", fromDay, "to", toDay)
	return nil
}

// MoveSmart transfers a placement and lets the slot search pick its time on
// the destination day, using the default duration for the probe. ErrNoSlot
// when the destination is full.
func (p *Planner) MoveSmart(id string, fromDay, toDay models.Day) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	duration := p.settings.DefaultDurationMin
	if duration <= 0 {
		duration = constants.DefaultDurationMin
	}
	newTime, ok := schedule.NextAvailableTimeIn(p.window(), p.weekend[toDay], duration, "")
	if !ok {
		return ErrNoSlot
	}
	return p.move(id, fromDay, toDay, newTime)
}

// Reorder replaces a day's storage order with the given id permutation,
// carrying drag-drop ordering. Every existing id must appear exactly once.
func (p *Planner) Reorder(day models.Day, ids []string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	activities := p.weekend[day]
	if len(ids) != len(activities) {
		return fmt.Errorf("reorder expects %d ids, got %d", len(activities), len(ids))
	}

	byID := make(map[string]models.ScheduledActivity, len(activities))
	for _, a := range activities {
		byID[a.ID] = a
	}

	updated := make([]models.ScheduledActivity, 0, len(ids))
	for _, id := range ids {
		a, ok := byID[id]
		if !ok {
			return fmt.Errorf("reorder: %w: %s", ErrNotFound, id)
		}
		delete(byID, id)
		updated = append(updated, a)
	}

	if err := p.store.SaveDay(day, updated); err != nil {
		return err
	}
	p.weekend[day] = updated
	return nil
}

// DayStats summarizes one day of the weekend.
type DayStats struct {
	Count       int `json:"count"`
	DurationMin int `json:"duration_min"`
	Conflicts   int `json:"conflicts"`
}

// Stats summarizes the whole weekend.
type Stats struct {
	Days            map[models.Day]DayStats `json:"days"`
	TotalActivities int                     `json:"total_activities"`
	TotalDuration   int                     `json:"total_duration_min"`
}

// Stats aggregates per-day counts, durations, and conflict counts.
func (p *Planner) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	stats := Stats{Days: make(map[models.Day]DayStats, len(models.Days))}
	for _, day := range models.Days {
		activities := p.weekend[day]
		ds := DayStats{
			Count:       len(activities),
			DurationMin: schedule.TotalDuration(activities),
			Conflicts:   len(schedule.CheckTimeConflicts(activities)),
		}
		stats.Days[day] = ds
		stats.TotalActivities += ds.Count
		stats.TotalDuration += ds.DurationMin
	}
	return stats
}

// ClearDay removes every placement on a day.
func (p *Planner) ClearDay(day models.Day) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.store.ClearDay(day); err != nil {
		return err
	}
	p.weekend[day] = []models.ScheduledActivity{}
	return nil
}

// ClearWeekend removes every placement on both days.
func (p *Planner) ClearWeekend() error {
	for _, day := range models.Days {
		if err := p.ClearDay(day); err != nil {
			return err
		}
	}
	return nil
}
