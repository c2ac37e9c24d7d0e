package entity

import "time"

// AlertType is the severity of an operational alert
type AlertType string

const (
	AlertCritical AlertType = "critical"
	AlertWarning  AlertType = "warning"
	AlertInfo     AlertType = "info"
)

// Valid reports whether t is one of the known severities
func (t AlertType) Valid() bool {
	return t == AlertCritical || t == AlertWarning || t == AlertInfo
}

// Alert represents an operational alert shown on the dashboard
type Alert struct {
	ID        uint      `json:"id"`
	Type      AlertType `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Resolved  bool      `json:"resolved"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// AlertFilter narrows an alert listing. Resolved is tri-state: nil means both.
type AlertFilter struct {
	Type     AlertType
	Resolved *bool
	Search   string
	Since    time.Time
	Skip     int
	Limit    int
}

// AlertStatistics summarizes the alert table
type AlertStatistics struct {
	TotalAlerts    int64 `json:"total_alerts"`
	CriticalAlerts int64 `json:"critical_alerts"`
	WarningAlerts  int64 `json:"warning_alerts"`
	InfoAlerts     int64 `json:"info_alerts"`
	ResolvedAlerts int64 `json:"resolved_alerts"`
	ActiveAlerts   int64 `json:"active_alerts"`
}
