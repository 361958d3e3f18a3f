package model

// InsightCategory identifies the rule that produced an insight.
type InsightCategory string

const (
	CategoryWeeklyComparison InsightCategory = "weekly_comparison"
	CategoryPaceProjection   InsightCategory = "pace_projection"
	CategoryTimeOfDay        InsightCategory = "time_of_day_pattern"
	CategoryWeekdayWeekend   InsightCategory = "weekday_vs_weekend"
	CategoryStreakProgress   InsightCategory = "streak_progress"
	CategoryGoalProximity    InsightCategory = "goal_proximity"
)

// Insight is a single rule-selected observation.
type Insight struct {
	Message  string          `json:"message"`
	Category InsightCategory `json:"category"`
	Icon     string          `json:"icon"`
}

// PlaceholderInsight is shown until there is enough data.
var PlaceholderInsight = Insight{
	Message:  "Track a few days to unlock personalized insights",
	Category: CategoryGoalProximity,
	Icon:     "lightbulb",
}
