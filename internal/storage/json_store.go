package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nisu0001/bea-apa3.0/internal/logger"
	"github.com/nisu0001/bea-apa3.0/internal/models"
	"github.com/nisu0001/bea-apa3.0/internal/validation"
)

// JSONStore keeps the whole settings document in a single pretty-printed
// JSON file, overwritten on every save.
type JSONStore struct {
	path string
	doc  *models.Document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	doc := models.DefaultDocument()
	doc.Achievements = models.DefaultAchievements()
	s.doc = &doc

	return s.Save()
}

// Load reads the settings file. A missing or corrupt file is never fatal:
// the store falls back to an all-defaults document and logs a warning. Keys
// absent from the file keep their defaults because decoding happens over a
// defaults-populated document.
func (s *JSONStore) Load() error {
	doc := models.DefaultDocument()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read settings, using defaults", "path", s.path, "error", err)
		}
		doc.Achievements = models.DefaultAchievements()
		s.doc = &doc
		return nil
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Warn("Settings file is corrupt, using defaults", "path", s.path, "error", err)
		doc = models.DefaultDocument()
		doc.Achievements = models.DefaultAchievements()
		s.doc = &doc
		return nil
	}

	doc.EnsureMaps()
	if len(doc.Achievements) == 0 {
		doc.Achievements = models.DefaultAchievements()
	}
	for _, issue := range validation.SanitizeDocument(&doc) {
		logger.Warn("Sanitized invalid setting", "key", issue.Key, "detail", issue.Description)
	}

	s.doc = &doc
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Document() *models.Document {
	return s.doc
}

func (s *JSONStore) Save() error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	data, err := json.MarshalIndent(s.doc, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
