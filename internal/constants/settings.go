package constants

const (
	// Preference values
	ThemeLight = "light"
	ThemeDark  = "dark"

	WeekStartMonday = "monday"
	WeekStartSunday = "sunday"

	// Default preference values
	DefaultTheme                = ThemeLight
	DefaultNotificationsEnabled = true
	DefaultWeekStart            = WeekStartMonday

	// Default habit presentation values
	DefaultHabitIcon  = "✅"
	DefaultHabitColor = "#6366F1"
	DefaultHabitUnit  = "times"

	// Default profile values
	DefaultProfileName = "Habit Tracker"
)
