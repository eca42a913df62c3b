package notifier

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nisu0001/bea-apa3.0/internal/constants"
	"github.com/nisu0001/bea-apa3.0/internal/models"
)

// Renderer turns an event into its on-screen form. The style string in
// settings is resolved to one of these once per event source.
type Renderer interface {
	RenderReminder() string
	RenderAchievement(a models.Achievement) string
	RenderTodoReminder(item models.TodoItem) string
}

// RendererFor maps a notification style to its strategy. Unknown styles fall
// back to Standard.
func RendererFor(style constants.NotificationStyle) Renderer {
	switch style {
	case constants.StyleLegacy:
		return legacyRenderer{}
	case constants.StyleOverTheTop:
		return overTheTopRenderer{}
	default:
		return standardRenderer{}
	}
}

// legacyRenderer is plain unstyled text.
type legacyRenderer struct{}

func (legacyRenderer) RenderReminder() string {
	return fmt.Sprintf("%s %s", constants.ReminderTitle, constants.ReminderBody)
}

func (legacyRenderer) RenderAchievement(a models.Achievement) string {
	return fmt.Sprintf("Achievement unlocked: %s (%s)", a.Name, a.Description)
}

func (legacyRenderer) RenderTodoReminder(item models.TodoItem) string {
	return fmt.Sprintf("Task reminder: %s", item.Text)
}

var (
	standardTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true)

	standardBodyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	overTheTopStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Border(lipgloss.DoubleBorder()).
			Padding(1, 3).
			Bold(true)
)

// standardRenderer is the default styled rendering.
type standardRenderer struct{}

func (standardRenderer) RenderReminder() string {
	return standardTitleStyle.Render("💧 "+constants.ReminderTitle) + "\n" +
		standardBodyStyle.Render(constants.ReminderBody)
}

func (standardRenderer) RenderAchievement(a models.Achievement) string {
	badge := "🏆"
	if !a.IsMajor {
		badge = "✨"
	}
	return standardTitleStyle.Render(badge+" "+a.Name) + "\n" +
		standardBodyStyle.Render(a.Description)
}

func (standardRenderer) RenderTodoReminder(item models.TodoItem) string {
	return standardTitleStyle.Render("⏰ Task Reminder") + "\n" +
		standardBodyStyle.Render(item.Text)
}

// overTheTopRenderer is the loud boxed rendering.
type overTheTopRenderer struct{}

func (overTheTopRenderer) RenderReminder() string {
	return overTheTopStyle.Render(strings.ToUpper(constants.ReminderTitle) + "\n" + constants.ReminderBody + " ✨✨✨")
}

func (overTheTopRenderer) RenderAchievement(a models.Achievement) string {
	return overTheTopStyle.Render("🎉 ACHIEVEMENT UNLOCKED 🎉\n" + a.Name + "\n" + a.Description)
}

func (overTheTopRenderer) RenderTodoReminder(item models.TodoItem) string {
	return overTheTopStyle.Render("⏰ DON'T FORGET ⏰\n" + item.Text)
}
