package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/nisu0001/bea-apa3.0/internal/constants"
	"github.com/nisu0001/bea-apa3.0/internal/logger"
	"github.com/nisu0001/bea-apa3.0/internal/models"
	"github.com/nisu0001/bea-apa3.0/internal/validation"
)

// SQLiteStore persists the same document contract as JSONStore in a SQLite
// database. Scalar settings live in a key/value table; history, log times,
// achievements and todos get their own tables. Save rewrites everything in
// one transaction, matching the whole-document overwrite semantics.
type SQLiteStore struct {
	path string
	db   *sql.DB
	doc  *models.Document
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS history (
	date  TEXT PRIMARY KEY,
	count INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS log_times (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	ts  TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS achievements (
	id   TEXT PRIMARY KEY,
	data TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS todos (
	id   INTEGER PRIMARY KEY,
	data TEXT NOT NULL
);
`

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	doc := models.DefaultDocument()
	doc.Achievements = models.DefaultAchievements()
	s.doc = &doc

	return s.Save()
}

// Load opens the database and reads the document. An unopenable or corrupt
// database is never fatal: the store logs a warning and serves an all-defaults
// in-memory document, the same contract JSONStore applies to a corrupt file.
// Saves fail until the database is repaired.
func (s *SQLiteStore) Load() error {
	if s.db == nil {
		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			logger.Warn("Failed to open database, using defaults", "path", s.path, "error", err)
			s.useDefaults()
			return nil
		}
		s.db = db
	}

	if _, err := s.db.Exec(schema); err != nil {
		logger.Warn("Database is unreadable, using defaults", "path", s.path, "error", err)
		s.db.Close()
		s.db = nil
		s.useDefaults()
		return nil
	}

	doc := models.DefaultDocument()

	if err := s.loadScalars(&doc); err != nil {
		logger.Warn("Failed to load settings rows, using defaults", "error", err)
		doc = models.DefaultDocument()
	}
	if err := s.loadCollections(&doc); err != nil {
		logger.Warn("Failed to load collection rows", "error", err)
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

func (s *SQLiteStore) useDefaults() {
	doc := models.DefaultDocument()
	doc.Achievements = models.DefaultAchievements()
	s.doc = &doc
}

func (s *SQLiteStore) loadScalars(doc *models.Document) error {
	rows, err := s.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return err
		}
		applyScalar(doc, key, value)
	}
	return rows.Err()
}

func applyScalar(doc *models.Document, key, value string) {
	switch key {
	case constants.SettingMinMinutes:
		if n, err := strconv.Atoi(value); err == nil {
			doc.MinMinutes = n
		}
	case constants.SettingMaxMinutes:
		if n, err := strconv.Atoi(value); err == nil {
			doc.MaxMinutes = n
		}
	case constants.SettingSnoozeMinutes:
		if n, err := strconv.Atoi(value); err == nil {
			doc.SnoozeMinutes = n
		}
	case constants.SettingDailyGoal:
		if n, err := strconv.Atoi(value); err == nil {
			doc.DailyGoal = n
		}
	case constants.SettingSoundEnabled:
		doc.SoundEnabled = value == "true"
	case constants.SettingSoundChoice:
		doc.SoundChoice = value
	case "log_count":
		if n, err := strconv.Atoi(value); err == nil {
			doc.Count = n
		}
	case "last_log_date":
		doc.LastLogDate = value
	case constants.SettingTheme:
		doc.Theme = value
	case constants.SettingShowProgressText:
		doc.ShowProgressText = value == "true"
	case constants.SettingStartAtLogin:
		doc.StartAtLogin = value == "true"
	case constants.SettingNotificationStyle:
		doc.Style = constants.NotificationStyle(value)
	case "user_profile":
		_ = json.Unmarshal([]byte(value), &doc.Profile)
	case "daily_task_completions":
		_ = json.Unmarshal([]byte(value), &doc.CompletionDates)
	}
}

func scalarRows(doc *models.Document) map[string]string {
	profile, _ := json.Marshal(doc.Profile)
	completions, _ := json.Marshal(doc.CompletionDates)
	return map[string]string{
		constants.SettingMinMinutes:        strconv.Itoa(doc.MinMinutes),
		constants.SettingMaxMinutes:        strconv.Itoa(doc.MaxMinutes),
		constants.SettingSnoozeMinutes:     strconv.Itoa(doc.SnoozeMinutes),
		constants.SettingDailyGoal:         strconv.Itoa(doc.DailyGoal),
		constants.SettingSoundEnabled:      strconv.FormatBool(doc.SoundEnabled),
		constants.SettingSoundChoice:       doc.SoundChoice,
		"log_count":                        strconv.Itoa(doc.Count),
		"last_log_date":                    doc.LastLogDate,
		constants.SettingTheme:             doc.Theme,
		constants.SettingShowProgressText:  strconv.FormatBool(doc.ShowProgressText),
		constants.SettingStartAtLogin:      strconv.FormatBool(doc.StartAtLogin),
		constants.SettingNotificationStyle: string(doc.Style),
		"user_profile":                     string(profile),
		"daily_task_completions":           string(completions),
	}
}

func (s *SQLiteStore) loadCollections(doc *models.Document) error {
	rows, err := s.db.Query(`SELECT date, count FROM history`)
	if err != nil {
		return err
	}
	for rows.Next() {
		var date string
		var count int
		if err := rows.Scan(&date, &count); err != nil {
			rows.Close()
			return err
		}
		doc.History[date] = count
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = s.db.Query(`SELECT ts FROM log_times ORDER BY seq`)
	if err != nil {
		return err
	}
	for rows.Next() {
		var ts string
		if err := rows.Scan(&ts); err != nil {
			rows.Close()
			return err
		}
		doc.LogTimes = append(doc.LogTimes, ts)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = s.db.Query(`SELECT data FROM achievements`)
	if err != nil {
		return err
	}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			rows.Close()
			return err
		}
		var a models.Achievement
		if err := json.Unmarshal([]byte(data), &a); err != nil {
			logger.Warn("Skipping corrupt achievement row", "error", err)
			continue
		}
		doc.Achievements[a.ID] = a
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = s.db.Query(`SELECT data FROM todos ORDER BY id`)
	if err != nil {
		return err
	}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			rows.Close()
			return err
		}
		var t models.TodoItem
		if err := json.Unmarshal([]byte(data), &t); err != nil {
			logger.Warn("Skipping corrupt todo row", "error", err)
			continue
		}
		doc.Todos = append(doc.Todos, t)
	}
	rows.Close()
	return rows.Err()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Document() *models.Document {
	return s.doc
}

func (s *SQLiteStore) Save() error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	if s.db == nil {
		return fmt.Errorf("database unavailable at %s", s.path)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"settings", "history", "log_times", "achievements", "todos"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for key, value := range scalarRows(s.doc) {
		if _, err := tx.Exec(`INSERT INTO settings (key, value) VALUES (?, ?)`, key, value); err != nil {
			return fmt.Errorf("failed to write setting %s: %w", key, err)
		}
	}
	for date, count := range s.doc.History {
		if _, err := tx.Exec(`INSERT INTO history (date, count) VALUES (?, ?)`, date, count); err != nil {
			return fmt.Errorf("failed to write history row: %w", err)
		}
	}
	for _, ts := range s.doc.LogTimes {
		if _, err := tx.Exec(`INSERT INTO log_times (ts) VALUES (?)`, ts); err != nil {
			return fmt.Errorf("failed to write log time: %w", err)
		}
	}
	for id, a := range s.doc.Achievements {
		data, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("failed to serialize achievement %s: %w", id, err)
		}
		if _, err := tx.Exec(`INSERT INTO achievements (id, data) VALUES (?, ?)`, id, string(data)); err != nil {
			return fmt.Errorf("failed to write achievement %s: %w", id, err)
		}
	}
	for _, t := range s.doc.Todos {
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("failed to serialize todo %d: %w", t.ID, err)
		}
		if _, err := tx.Exec(`INSERT INTO todos (id, data) VALUES (?, ?)`, t.ID, string(data)); err != nil {
			return fmt.Errorf("failed to write todo %d: %w", t.ID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
