package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/pkg/logger"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *GeminiService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := NewGeminiService(context.Background(), "gemini-1.5-flash", time.Second, logger.NewNopLogger(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return svc
}

func TestGeminiService_Reply(t *testing.T) {
	t.Run("Returns the candidate text", func(t *testing.T) {
		var body map[string]interface{}
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-1.5-flash:generateContent"), r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Runway 27L "},{"text":"is busy."}]}}]}`))
		})

		reply, err := svc.Reply(context.Background(), "runway status?", "dashboard")
		require.NoError(t, err)
		assert.Equal(t, "Runway 27L is busy.", reply)

		raw, _ := json.Marshal(body)
		assert.Contains(t, string(raw), "runway status?")
		assert.Contains(t, string(raw), "Context: dashboard")
		assert.Contains(t, string(raw), "airport operations management system")
	})

	t.Run("No candidates", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"candidates":[]}`))
		})

		_, err := svc.Reply(context.Background(), "hello", "")
		assert.ErrorIs(t, err, ErrNoCandidates)
	})

	t.Run("API errors are returned", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":{"code":403,"message":"API key not valid"}}`))
		})

		_, err := svc.Reply(context.Background(), "hello", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "generateContent")
	})
}

func TestBuildUserPrompt(t *testing.T) {
	assert.NotContains(t, buildUserPrompt("hi", ""), "Context:")
	assert.Contains(t, buildUserPrompt("hi", "alerts page"), "Context: alerts page")
}

func TestGeminiService_AnalyzeRunways(t *testing.T) {
	samples := []entity.RunwayMetric{
		{Runway: "27L", Utilization: 92.5, Capacity: 100, Delays: 8, Conflicts: 4, Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
	}

	t.Run("Decodes the JSON analysis", func(t *testing.T) {
		var body map[string]interface{}
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"` +
				`Here you go: {\"analysis\":\"27L is saturated\",\"recommendations\":[{\"type\":\"immediate\",\"action\":\"Shift arrivals\",\"impact\":\"Fewer delays\",\"priority\":\"high\"}],\"efficiency_score\":\"72%\",\"bottlenecks\":[\"27L\"]}` +
				`"}]}}]}`))
		})

		got, err := svc.AnalyzeRunways(context.Background(), samples)
		require.NoError(t, err)

		assert.Equal(t, "27L is saturated", got.Analysis)
		assert.Equal(t, 72.0, got.EfficiencyScore)
		assert.Equal(t, []string{"27L"}, got.Bottlenecks)
		require.Len(t, got.Recommendations, 1)
		assert.Equal(t, "high", got.Recommendations[0].Priority)

		raw, _ := json.Marshal(body)
		assert.Contains(t, string(raw), `\"runway\": \"27L\"`)
		assert.Contains(t, string(raw), "2026-03-01T12:00:00Z")
		assert.Contains(t, string(raw), "application/json")
	})

	t.Run("Reply without JSON", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"All runways look fine."}]}}]}`))
		})

		_, err := svc.AnalyzeRunways(context.Background(), samples)
		assert.ErrorIs(t, err, ErrNoAnalysis)
	})
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{`81.5`, 81.5},
		{`"64"`, 64},
		{`" 90 % "`, 90},
		{`"high"`, 0},
		{`null`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseScore(json.RawMessage(tt.raw)))
		})
	}
}
