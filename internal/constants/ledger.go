package constants

const (
	// Level thresholds: a streak at or above a threshold reaches that tier.
	RegularStreakThreshold = 3
	ProStreakThreshold     = 7
	MasterStreakThreshold  = 14

	// Insight thresholds
	InsightHighCompletionRate  = 80 // overall percentage that earns praise
	InsightLowCompletionRate   = 50 // overall percentage below which consistency is flagged
	InsightRecentLogWindow     = 7  // logs considered for per-habit trends
	InsightPraiseMinLogs       = 5
	InsightStruggleMinLogs     = 3
	InsightStruggleRate        = 30 // recent percentage below which a habit is flagged
	InsightMinHabitsSuggestion = 3

	// Chart periods offered by the presentation layer
	ChartPeriodWeek  = 7
	ChartPeriodMonth = 30

	// ReminderGraceMin is how late a reminder may still be considered due
	ReminderGraceMin = 10
)

func init() {
	// Runtime validation: level thresholds must be strictly increasing
	if !(0 < RegularStreakThreshold && RegularStreakThreshold < ProStreakThreshold && ProStreakThreshold < MasterStreakThreshold) {
		panic("level thresholds must be strictly increasing")
	}
}
