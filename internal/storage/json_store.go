package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/weekendly/weekendly/internal/models"
)

type jsonFile struct {
	Version  int                                       `json:"version"`
	Settings models.Settings                           `json:"settings"`
	Weekend  map[models.Day][]models.ScheduledActivity `json:"weekend"`
}

// JSONStore keeps the whole weekend in a single JSON file, the closest
// analogue to the browser-local storage the planner grew out of. Useful for
// debugging and as a dependency-free fallback.
type JSONStore struct {
	path  string
	store *jsonFile
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &jsonFile{
		Version:  1,
		Settings: models.DefaultSettings(),
		Weekend: map[models.Day][]models.ScheduledActivity{
			models.DaySaturday: {},
			models.DaySunday:   {},
		},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'weekendly init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	var store jsonFile
	if err := json.Unmarshal(data, &store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if store.Weekend == nil {
		store.Weekend = map[models.Day][]models.ScheduledActivity{}
	}
	s.store = &store
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	return os.WriteFile(s.path, data, 0600)
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.store == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) GetDay(day models.Day) ([]models.ScheduledActivity, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	activities := s.store.Weekend[day]
	out := make([]models.ScheduledActivity, len(activities))
	copy(out, activities)
	return out, nil
}

func (s *JSONStore) GetWeekend() (map[models.Day][]models.ScheduledActivity, error) {
	weekend := make(map[models.Day][]models.ScheduledActivity, len(models.Days))
	for _, day := range models.Days {
		activities, err := s.GetDay(day)
		if err != nil {
			return nil, err
		}
		weekend[day] = activities
	}
	return weekend, nil
}

func (s *JSONStore) SaveDay(day models.Day, activities []models.ScheduledActivity) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	stored := make([]models.ScheduledActivity, len(activities))
	copy(stored, activities)
	s.store.Weekend[day] = stored
	return s.save()
}

func (s *JSONStore) ClearDay(day models.Day) error {
	return s.SaveDay(day, []models.ScheduledActivity{})
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
