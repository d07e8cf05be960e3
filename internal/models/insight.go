package models

// InsightType classifies an insight for the presentation layer
type InsightType string

const (
	InsightBudgetAlert   InsightType = "budget-alert"
	InsightBudgetWarning InsightType = "budget-warning"
	InsightAnomaly       InsightType = "anomaly"
	InsightTrend         InsightType = "trend"
	InsightSeasonal      InsightType = "seasonal"
	InsightPattern       InsightType = "pattern"
	InsightPositive      InsightType = "positive"
)

// Order gives a stable display order between insight types of equal priority
func (t InsightType) Order() int {
	switch t {
	case InsightBudgetAlert:
		return 0
	case InsightAnomaly:
		return 1
	case InsightBudgetWarning:
		return 2
	case InsightTrend:
		return 3
	case InsightPattern:
		return 4
	case InsightSeasonal:
		return 5
	default:
		return 6
	}
}

// Priority ranks insights for display
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities from most to least urgent
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Insight is one human-facing finding
type Insight struct {
	Type     InsightType `json:"type"`
	Title    string      `json:"title"`
	Message  string      `json:"message"`
	Priority Priority    `json:"priority"`
	Action   string      `json:"action,omitempty"`
	Category string      `json:"category,omitempty"`
}

// InsightsByPriority groups insights by priority
type InsightsByPriority struct {
	High   []Insight `json:"high"`
	Medium []Insight `json:"medium"`
	Low    []Insight `json:"low"`
}

// InsightReport is the synthesized, ranked set of insights
type InsightReport struct {
	All        []Insight          `json:"all"`
	ByPriority InsightsByPriority `json:"by_priority"`
}
