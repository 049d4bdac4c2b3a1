package service

import (
	"time"

	"lexibox/internal/domain"

	"go.uber.org/zap"
)

// updateStreak folds one qualifying activity into the streak state. It is
// evaluated against the local calendar date of the given moment, which must
// come from the clock at call time: the app can stay open across midnight.
func (t *Tracker) updateStreak(now time.Time) {
	stats := &t.store.Stats
	today := domain.DateKey(now)

	if stats.LastActiveDate == today {
		// already counted today, only make sure the window shows it
		stats.WeeklyActivity[0] = true
		return
	}

	if stats.LastActiveDate != "" && domain.DaysBetween(stats.LastActiveDate, today) == 1 {
		stats.CurrentStreak++
	} else {
		stats.CurrentStreak = 1
	}

	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}

	if stats.LastActiveDate == "" {
		stats.WeeklyActivity = [domain.WeeklyDays]bool{}
	} else {
		stats.WeeklyActivity = domain.ShiftWeekly(stats.WeeklyActivity, domain.DaysBetween(stats.LastActiveDate, today))
	}
	stats.WeeklyActivity[0] = true

	stats.LastActiveDate = today

	t.logger.Debug("Streak updated",
		zap.String("date", today),
		zap.Int("current_streak", stats.CurrentStreak),
		zap.Int("longest_streak", stats.LongestStreak),
	)
}

// IncrementPracticeCount records a completed practice session. Finishing a
// session counts as qualifying activity for the streak.
func (t *Tracker) IncrementPracticeCount() {
	t.store.Stats.TotalPractices++
	t.updateStreak(t.clock.Now())

	t.persist()
}
