package constants

const (
	// Reminder settings
	SettingMinMinutes    = "min_minutes"
	SettingMaxMinutes    = "max_minutes"
	SettingSnoozeMinutes = "snooze_minutes"
	SettingDailyGoal     = "daily_goal"

	// Notification settings
	SettingSoundEnabled      = "sound_enabled"
	SettingSoundChoice       = "sound_choice"
	SettingNotificationStyle = "notification_style"

	// Appearance settings
	SettingTheme            = "theme"
	SettingShowProgressText = "show_progress_text"

	// System settings
	SettingStartAtLogin = "start_at_login"

	// Default Settings Values
	DefaultMinMinutes        = 30
	DefaultMaxMinutes        = 60
	DefaultSnoozeMinutes     = 10
	DefaultDailyGoal         = 15
	DefaultSoundEnabled      = true
	DefaultSoundChoice       = "assets/sounds/normal.wav"
	DefaultTheme             = "Ocean"
	DefaultShowProgressText  = true
	DefaultStartAtLogin      = true
	DefaultNotificationStyle = StyleStandard
	DefaultCategory          = "Personal"
)

// ThemeNames is the fixed table of theme keys a settings document may carry.
// Rendering is the tray application's concern; the core only validates the
// value domain.
var ThemeNames = []string{
	"dark",
	"light",
	"dark v2",
	"apple dark",
	"ios_dark",
	"ios_light",
	"ocean",
	"forest",
	"purple",
	"Ocean",
}

// SoundOptions maps the selectable notification sounds to their asset paths.
var SoundOptions = map[string]string{
	"Normal": "assets/sounds/normal.wav",
	"Baby":   "assets/sounds/baby.wav",
	"Meow":   "assets/sounds/meow.wav",
	"Ding":   "assets/sounds/ding.wav",
}

// SuggestedCategories is the small default category list offered for todos.
// Categories remain free-form strings.
var SuggestedCategories = []string{"Personal", "Work", "Shopping", "Health", "Study"}
