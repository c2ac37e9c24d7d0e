package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/internal/interface/backend"
	"airport-ops-service/pkg/logger"
	"airport-ops-service/pkg/utils"
)

var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func init() {
	color.NoColor = true
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return backend.NewClient(srv.URL, 2*time.Second, nil, logger.NewNopLogger())
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func TestTableRender(t *testing.T) {
	tbl := newTable("CODE", "CITY")
	tbl.add("NRT", "東京")
	tbl.add("LHR", "London")

	var out bytes.Buffer
	require.NoError(t, tbl.render(&out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "CODE  CITY", lines[0])
	assert.Equal(t, "----  ------", lines[1])
	assert.Equal(t, "NRT   東京", lines[2])
	assert.Equal(t, "LHR   London", lines[3])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefghij", 5))
}

func TestRunSearch(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		gotQuery = body["query"]
		writeJSON(w, utils.MockFlights(base)[:2])
	})

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), client, &out, "search", []string{"flights", "to", "London"}))

	assert.Equal(t, "flights to London", gotQuery)
	assert.Contains(t, out.String(), "FLIGHT")
	assert.Contains(t, out.String(), "2 flight(s)")
	assert.NotContains(t, out.String(), "fallback")
}

func TestRunSearch_EmptyQuery(t *testing.T) {
	client := backend.NewClient("http://127.0.0.1:0", time.Second, nil, logger.NewNopLogger())
	err := run(context.Background(), client, &bytes.Buffer{}, "search", nil)
	assert.Error(t, err)
}

func TestRunChat_Fallback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), client, &out, "chat", []string{"hello"}))

	assert.Contains(t, out.String(), "backend unavailable")
	assert.Contains(t, out.String(), backend.FallbackChatReply)
}

func TestRunChat_ShowsSources(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, entity.ChatResponse{
			Response:   "Runway 09L is busy.",
			Confidence: 0.9,
			Sources:    []string{entity.SourceAssistant},
		})
	})

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), client, &out, "chat", []string{"runway", "status"}))

	assert.Contains(t, out.String(), "Runway 09L is busy.")
	assert.Contains(t, out.String(), "confidence 0.9")
}

func TestRunAlerts(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeJSON(w, utils.MockAlerts(base))
	})

	var out bytes.Buffer
	err := run(context.Background(), client, &out, "alerts", []string{"-type", "critical", "-resolved", "false"})
	require.NoError(t, err)

	assert.Equal(t, "resolved=false&type=critical", gotQuery)
	assert.Contains(t, out.String(), "critical")
}

func TestRunAlerts_InvalidFlags(t *testing.T) {
	client := backend.NewClient("http://127.0.0.1:0", time.Second, nil, logger.NewNopLogger())

	assert.Error(t, run(context.Background(), client, &bytes.Buffer{}, "alerts", []string{"-type", "urgent"}))
	assert.Error(t, run(context.Background(), client, &bytes.Buffer{}, "alerts", []string{"-resolved", "sometimes"}))
}

func TestRunRunways(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []entity.RunwayMetric{
			{Runway: "09L", Utilization: 92.5, Capacity: 40, Delays: 6, Conflicts: 6, Timestamp: base},
			{Runway: "27R", Utilization: 35, Capacity: 40, Timestamp: base},
		})
	})

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), client, &out, "runways", nil))

	assert.Contains(t, out.String(), "High Load - Conflicts")
	assert.Contains(t, out.String(), "Low Load")
	assert.Contains(t, out.String(), "92.5%")
}

func TestRunUnknownCommand(t *testing.T) {
	client := backend.NewClient("http://127.0.0.1:0", time.Second, nil, logger.NewNopLogger())
	err := run(context.Background(), client, &bytes.Buffer{}, "optimize", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
