package constants

// MotivationalQuotes are shown after a drink is logged.
var MotivationalQuotes = []string{
	"Great job staying hydrated!",
	"Your body thanks you!",
	"Keep the streak going!",
	"One sip closer to your goal!",
	"Hydration is self-care.",
	"Water you waiting for? Nicely done!",
	"That's the spirit. And the water.",
}

const (
	// ReminderTitle and ReminderBody are the reminder-due surfaces' text.
	ReminderTitle = "Time to Hydrate!"
	ReminderBody  = "Your body needs water!"

	// SnoozeMessage is shown when the next reminder is pushed back.
	SnoozeMessage = "Reminder snoozed! I'll remind you again later."

	// ClassroomMessage is shown when classroom mode is activated.
	ClassroomMessage = "Classroom mode activated! I'll be quiet for 90 minutes."
)
