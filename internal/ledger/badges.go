package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitrack/internal/constants"
	"github.com/julianstephens/habitrack/internal/models"
)

// BadgeRule awards a named badge when Earned returns true for a check-in.
// A habit holds at most one badge per rule name.
type BadgeRule struct {
	Name        string
	Description string
	Icon        string
	Earned      func(StreakTransition) bool
}

// StreakReached fires when a check-in lands the streak exactly on n.
func StreakReached(n int) func(StreakTransition) bool {
	return func(t StreakTransition) bool {
		return t.Current == n
	}
}

// WeekWarrior is awarded for a 7-day streak.
var WeekWarrior = BadgeRule{
	Name:        "Week Warrior",
	Description: "7-day streak achieved!",
	Icon:        "🔥",
	Earned:      StreakReached(constants.ProStreakThreshold),
}

// DefaultBadgeRules returns the rules every ledger evaluates.
func DefaultBadgeRules() []BadgeRule {
	return []BadgeRule{WeekWarrior}
}

// evaluateBadges appends a badge to h for each rule that fires and has not
// been earned yet, returning the new badges in rule order.
func evaluateBadges(rules []BadgeRule, h *models.Habit, t StreakTransition, now time.Time) []models.Badge {
	var awarded []models.Badge
	for _, rule := range rules {
		if h.HasBadge(rule.Name) || !rule.Earned(t) {
			continue
		}
		badge := models.Badge{
			ID:          uuid.New().String(),
			Name:        rule.Name,
			Description: rule.Description,
			Icon:        rule.Icon,
			Acquired:    now,
		}
		h.Badges = append(h.Badges, badge)
		awarded = append(awarded, badge)
	}
	return awarded
}

// BadgeMessage is the notification text for an awarded badge.
func BadgeMessage(badge models.Badge, habitName string) string {
	return fmt.Sprintf("Congratulations! You earned the \"%s\" badge for %s!", badge.Name, habitName)
}
