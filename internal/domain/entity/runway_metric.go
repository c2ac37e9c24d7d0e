package entity

import "time"

// RunwayMetric is one utilization sample for a runway
type RunwayMetric struct {
	ID          uint      `json:"id"`
	Runway      string    `json:"runway"`
	Utilization float64   `json:"utilization"`
	Capacity    int       `json:"capacity"`
	Delays      int       `json:"delays"`
	Conflicts   int       `json:"conflicts"`
	Timestamp   time.Time `json:"timestamp"`
	CreatedAt   time.Time `json:"created_at"`
}

// RunwayFilter narrows a metric listing
type RunwayFilter struct {
	Runway string
	Since  time.Time
	Skip   int
	Limit  int
}

// RunwayStatus is the latest reading of a runway with its load classification
type RunwayStatus struct {
	Runway      string    `json:"runway"`
	Utilization float64   `json:"utilization"`
	Capacity    int       `json:"capacity"`
	Delays      int       `json:"delays"`
	Conflicts   int       `json:"conflicts"`
	Efficiency  float64   `json:"efficiency"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}

// RunwayAverage holds the mean values of all stored samples of a runway
type RunwayAverage struct {
	Runway         string  `json:"runway"`
	AvgUtilization float64 `json:"avg_utilization"`
	AvgDelays      float64 `json:"avg_delays"`
	AvgConflicts   float64 `json:"avg_conflicts"`
}

// RunwayStatistics aggregates the current status of all runways
type RunwayStatistics struct {
	TotalRunways      int             `json:"total_runways"`
	OverallEfficiency float64         `json:"overall_efficiency"`
	TotalDelays       int             `json:"total_delays"`
	TotalConflicts    int             `json:"total_conflicts"`
	Bottlenecks       []RunwayStatus  `json:"bottlenecks"`
	RunwayDetails     []RunwayAverage `json:"runway_details"`
	CurrentStatus     []RunwayStatus  `json:"current_status"`
}

// Traffic levels of an hour of the day
const (
	TrafficHigh   = "High"
	TrafficMedium = "Medium"
	TrafficLow    = "Low"
)

// RunwayHourly aggregates the samples of one runway falling in one hour of the day
type RunwayHourly struct {
	Hour           int     `json:"hour"`
	AvgUtilization float64 `json:"avg_utilization"`
	AvgDelays      float64 `json:"avg_delays"`
	AvgConflicts   float64 `json:"avg_conflicts"`
	DataPoints     int64   `json:"data_points"`
	TrafficLevel   string  `json:"traffic_level,omitempty"`
}

// Recommendation is one suggested operational change
type Recommendation struct {
	Type     string `json:"type"`
	Action   string `json:"action"`
	Impact   string `json:"impact"`
	Priority string `json:"priority"`
}

// RunwayOptimization is the analysis of recent runway utilization
type RunwayOptimization struct {
	Analysis        string           `json:"analysis"`
	Recommendations []Recommendation `json:"recommendations"`
	EfficiencyScore float64          `json:"efficiency_score"`
	Bottlenecks     []string         `json:"bottlenecks"`
}
