package notifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/nisu0001/bea-apa3.0/internal/constants"
	"github.com/nisu0001/bea-apa3.0/internal/logger"
	"github.com/nisu0001/bea-apa3.0/internal/models"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

// Notifier surfaces reminder-due and achievement-unlocked events. Rendering
// always goes to the renderer (terminal/log); when the tray helper is
// running its webhook is used as well, best-effort.
type Notifier struct {
	renderer Renderer
}

// WebhookPayload is the body sent to the tray helper.
type WebhookPayload struct {
	Title      string `json:"title"`
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

func New(style constants.NotificationStyle) *Notifier {
	return &Notifier{renderer: RendererFor(style)}
}

// SetStyle swaps the rendering strategy. Resolved once per event source, not
// per string comparison at render time.
func (n *Notifier) SetStyle(style constants.NotificationStyle) {
	n.renderer = RendererFor(style)
}

// ReminderDue surfaces the hydration prompt.
func (n *Notifier) ReminderDue() {
	fmt.Println(n.renderer.RenderReminder())
	n.tray(constants.ReminderTitle, constants.ReminderBody)
}

// AchievementUnlocked surfaces an unlock event. Implements the achievement
// engine's Sink.
func (n *Notifier) AchievementUnlocked(a models.Achievement) {
	fmt.Println(n.renderer.RenderAchievement(a))
	n.tray("Achievement Unlocked!", fmt.Sprintf("%s: %s", a.Name, a.Description))
}

// TodoReminder surfaces a due task reminder.
func (n *Notifier) TodoReminder(item models.TodoItem) {
	fmt.Println(n.renderer.RenderTodoReminder(item))
	n.tray("Task Reminder", item.Text)
}

// tray forwards the event to the tray helper when one is running. Missing
// helper, stale lockfile or webhook failure only logs; the event was already
// rendered locally.
func (n *Notifier) tray(title, text string) {
	configDir, err := TrayConfigDir()
	if err != nil {
		logger.Debug("Tray helper config dir unavailable", "error", err)
		return
	}

	port, secret, err := findAndValidateTrayProcess(filepath.Join(configDir, constants.TrayLockName))
	if err != nil {
		logger.Debug("Tray helper not reachable", "error", err)
		return
	}

	payload := WebhookPayload{
		Title:      title,
		Text:       text,
		DurationMs: constants.NotificationDurationMs,
	}
	if err := sendNotification(port, secret, payload); err != nil {
		logger.Warn("Tray notification failed", "error", err)
	}
}

// TrayConfigDir returns the configuration directory shared with the tray
// helper.
func TrayConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	return filepath.Join(configDir, constants.AppName), nil
}

func findAndValidateTrayProcess(lockfilePath string) (string, string, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", errors.New("tray helper is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port := parts[0]
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", "", errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", "", fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}
	secret := parts[2]
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", errors.New("tray helper process not running")
	}

	return port, secret, nil
}

func sendNotification(port string, secret string, payload WebhookPayload) error {
	url := fmt.Sprintf("http://127.0.0.1:%s", port)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-BeaApa-Secret", secret)

	client := &http.Client{Timeout: 2 * time.Second}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(body))
}
