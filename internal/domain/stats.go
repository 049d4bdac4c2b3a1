package domain

// ActivityStats is the per-installation aggregate record: lifetime counters,
// streak continuity, and the rolling 7-day activity window (index 0 = today).
type ActivityStats struct {
	TotalRead      int              `json:"total_read"`
	TotalFavorited int              `json:"total_favorited"`
	TotalSaved     int              `json:"total_saved"`
	TotalPractices int              `json:"total_practices"`
	CurrentStreak  int              `json:"current_streak"`
	LongestStreak  int              `json:"longest_streak"`
	LastActiveDate string           `json:"last_active_date,omitempty"`
	WeeklyActivity [WeeklyDays]bool `json:"weekly_activity"`
}
