package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"airport-ops-service/pkg/logger"
)

func TestDefaultResponder(t *testing.T) {
	responder := DefaultResponder(logger.NewNopLogger())

	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{"Flight search needs both words", "Can you search for a flight?", FlightSearchResponse},
		{"Flight search outranks delay", "search delayed flights", FlightSearchResponse},
		{"Flight alone is not a search", "My flight is late, any delay?", RunwayResponse},
		{"Runway", "What's the RUNWAY status?", RunwayResponse},
		{"Alert", "show me the alerts", AlertResponse},
		{"Notification", "any notifications?", AlertResponse},
		{"Gate", "Which gate?", GateResponse},
		{"Terminal outranks weather", "terminal weather", GateResponse},
		{"Weather", "weather forecast", WeatherResponse},
		{"Greeting", "Hello", GreetingResponse},
		{"Hi as a substring", "is this open?", GreetingResponse},
		{"Fallback", "thanks", FallbackResponse},
		{"Empty message", "", FallbackResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, responder.Reply(tt.message))
		})
	}

	t.Run("Replies are deterministic", func(t *testing.T) {
		assert.Equal(t, responder.Reply("runway"), responder.Reply("runway"))
	})
}
