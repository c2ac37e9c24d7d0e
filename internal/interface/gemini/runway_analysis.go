package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"google.golang.org/api/generativelanguage/v1beta"

	"airport-ops-service/internal/domain/entity"
)

const runwayAnalysisPrompt = `You are an airport operations analyst. Analyze the following runway utilization data and provide optimization recommendations.

Runway Data: %s

Respond with a JSON object:
{
  "analysis": "brief analysis of current runway utilization",
  "recommendations": [
    {"type": "immediate|strategic", "action": "specific action to take", "impact": "expected improvement", "priority": "high|medium|low"}
  ],
  "efficiency_score": 0-100,
  "bottlenecks": ["list of identified bottlenecks"]
}

Focus on practical, actionable recommendations for airport operations.`

// ErrNoAnalysis is returned when the model reply holds no JSON object
var ErrNoAnalysis = errors.New("gemini reply holds no runway analysis")

var jsonObject = regexp.MustCompile(`(?s)\{.*\}`)

type runwaySample struct {
	Runway      string  `json:"runway"`
	Utilization float64 `json:"utilization"`
	Capacity    int     `json:"capacity"`
	Delays      int     `json:"delays"`
	Conflicts   int     `json:"conflicts"`
	Timestamp   string  `json:"timestamp"`
}

// AnalyzeRunways asks the model for optimization recommendations over the samples
func (s *GeminiService) AnalyzeRunways(ctx context.Context, metrics []entity.RunwayMetric) (*entity.RunwayOptimization, error) {
	samples := make([]runwaySample, 0, len(metrics))
	for _, m := range metrics {
		samples = append(samples, runwaySample{
			Runway:      m.Runway,
			Utilization: m.Utilization,
			Capacity:    m.Capacity,
			Delays:      m.Delays,
			Conflicts:   m.Conflicts,
			Timestamp:   m.Timestamp.UTC().Format(time.RFC3339),
		})
	}

	data, err := json.MarshalIndent(samples, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode runway samples: %w", err)
	}

	req := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{userContent(fmt.Sprintf(runwayAnalysisPrompt, data))},
		GenerationConfig: &generativelanguage.GenerationConfig{
			ResponseMimeType: "application/json",
		},
	}

	text, err := s.generate(ctx, req)
	if err != nil {
		return nil, err
	}
	return parseOptimization(text)
}

// parseOptimization decodes the first JSON object of the reply.
// efficiency_score may come back as a number or as a string such as "72" or "72%".
func parseOptimization(text string) (*entity.RunwayOptimization, error) {
	raw := jsonObject.FindString(text)
	if raw == "" {
		return nil, ErrNoAnalysis
	}

	var reply struct {
		Analysis        string                  `json:"analysis"`
		Recommendations []entity.Recommendation `json:"recommendations"`
		EfficiencyScore json.RawMessage         `json:"efficiency_score"`
		Bottlenecks     []string                `json:"bottlenecks"`
	}
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return nil, fmt.Errorf("failed to decode runway analysis: %w", err)
	}

	optimization := &entity.RunwayOptimization{
		Analysis:        reply.Analysis,
		Recommendations: reply.Recommendations,
		EfficiencyScore: parseScore(reply.EfficiencyScore),
		Bottlenecks:     reply.Bottlenecks,
	}
	if optimization.Recommendations == nil {
		optimization.Recommendations = []entity.Recommendation{}
	}
	if optimization.Bottlenecks == nil {
		optimization.Bottlenecks = []string{}
	}
	return optimization, nil
}

func parseScore(raw json.RawMessage) float64 {
	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return number
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return 0
	}
	number, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "%")), 64)
	if err != nil {
		return 0
	}
	return number
}
