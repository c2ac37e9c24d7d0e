package templates

import (
	"airport-ops-service/internal/infrastructure/router"
	"airport-ops-service/internal/usecase"
	"airport-ops-service/pkg/logger"
)

// Canned chat replies
const (
	FlightSearchResponse = "I can help you search for flights! Try a query like \"flights to London after 3 PM tomorrow\" " +
		"on the Flight Search page, or narrow it down by airline, origin and destination."

	RunwayResponse = "Runway operations are running normally. Runway 27L is under high utilization and the average " +
		"departure delay is about 12 minutes. Check the Runway Analytics page for live metrics."

	AlertResponse = "You can review all active alerts on the Alerts page. Critical alerts are listed first and can be " +
		"marked as resolved once handled."

	GateResponse = "Gate and terminal assignments are shown on every flight card. Search for your flight number to see " +
		"its current gate and terminal."

	WeatherResponse = "Current weather: clear skies with strong crosswinds expected between 15:00 and 18:00. " +
		"Some departures may be delayed."

	GreetingResponse = "Hello! I'm your airport operations assistant. Ask me about flights, runway status, alerts, " +
		"gates or the weather."

	FallbackResponse = "I'm your airport operations assistant. I can help with flight searches, runway status, " +
		"alerts and gate information. What would you like to know?"
)

// RegisterDefaultResponses registers the canned reply rules in priority order
func RegisterDefaultResponses(r usecase.ResponseRouter) {
	r.Register(usecase.NewAllKeywordsRule("flight_search", FlightSearchResponse, "flight", "search"))
	r.Register(usecase.NewAnyKeywordRule("runway", RunwayResponse, "runway", "delay"))
	r.Register(usecase.NewAnyKeywordRule("alert", AlertResponse, "alert", "notification"))
	r.Register(usecase.NewAnyKeywordRule("gate", GateResponse, "gate", "terminal"))
	r.Register(usecase.NewAnyKeywordRule("weather", WeatherResponse, "weather"))
	r.Register(usecase.NewAnyKeywordRule("greeting", GreetingResponse, "hello", "hi"))
}

// DefaultResponder returns a router with the default rules and fallback registered
func DefaultResponder(logger logger.Logger) *router.ResponseRouter {
	r := router.NewResponseRouter(FallbackResponse, logger)
	RegisterDefaultResponses(r)
	return r
}
