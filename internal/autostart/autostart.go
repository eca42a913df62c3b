package autostart

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/nisu0001/bea-apa3.0/internal/constants"
)

// Autostart registers the daemon with the OS login-launch mechanism: an XDG
// autostart entry on Linux, a LaunchAgents plist on macOS. Install and
// Uninstall are idempotent; the core only consults the start_at_login
// setting and calls whichever applies.
type Autostart struct {
	execPath string
	homeDir  string
	goos     string
}

func New(execPath string) *Autostart {
	home, _ := os.UserHomeDir()
	return &Autostart{
		execPath: execPath,
		homeDir:  home,
		goos:     runtime.GOOS,
	}
}

// NewForPlatform injects the platform and home directory, for tests.
func NewForPlatform(execPath, homeDir, goos string) *Autostart {
	return &Autostart{execPath: execPath, homeDir: homeDir, goos: goos}
}

const desktopEntry = `[Desktop Entry]
Type=Application
Name=Bea Apa
Comment=Hydration reminder
Exec=%s daemon
X-GNOME-Autostart-enabled=true
`

const launchAgent = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>%s</string>
	<key>ProgramArguments</key>
	<array>
		<string>%s</string>
		<string>daemon</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
</dict>
</plist>
`

// Path returns the descriptor file location for the current platform.
func (a *Autostart) Path() (string, error) {
	switch a.goos {
	case "linux":
		return filepath.Join(a.homeDir, ".config", "autostart", constants.AppName+".desktop"), nil
	case "darwin":
		return filepath.Join(a.homeDir, "Library", "LaunchAgents", constants.TrayAppIdentifier+".plist"), nil
	default:
		return "", fmt.Errorf("autostart not supported on %s", a.goos)
	}
}

// IsInstalled reports whether the descriptor file exists.
func (a *Autostart) IsInstalled() bool {
	path, err := a.Path()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Install writes the launch descriptor. Re-installing overwrites in place.
func (a *Autostart) Install() error {
	path, err := a.Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create autostart directory: %w", err)
	}

	var content string
	switch a.goos {
	case "linux":
		content = fmt.Sprintf(desktopEntry, a.execPath)
	case "darwin":
		content = fmt.Sprintf(launchAgent, constants.TrayAppIdentifier, a.execPath)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write autostart entry: %w", err)
	}
	return nil
}

// Uninstall removes the launch descriptor; removing an absent entry is not
// an error.
func (a *Autostart) Uninstall() error {
	path, err := a.Path()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove autostart entry: %w", err)
	}
	return nil
}
