package router

import (
	"airport-ops-service/internal/usecase"
	"airport-ops-service/pkg/logger"
)

// ResponseRouter routes chat messages to canned response rules in registration order
type ResponseRouter struct {
	rules    []usecase.ResponseRule
	fallback string
	logger   logger.Logger
}

// NewResponseRouter creates a new response router answering fallback when no rule matches
func NewResponseRouter(fallback string, logger logger.Logger) *ResponseRouter {
	return &ResponseRouter{
		rules:    make([]usecase.ResponseRule, 0),
		fallback: fallback,
		logger:   logger,
	}
}

// Register appends a rule; earlier rules win
func (r *ResponseRouter) Register(rule usecase.ResponseRule) {
	r.rules = append(r.rules, rule)
	r.logger.Debug("Registered response rule", "rule", rule)
}

// GetRule returns the first rule that can handle the message
func (r *ResponseRouter) GetRule(text string) usecase.ResponseRule {
	for _, rule := range r.rules {
		if rule.CanHandle(text) {
			return rule
		}
	}
	return nil
}

// Reply returns the text of the first matching rule or the fallback
func (r *ResponseRouter) Reply(text string) string {
	if rule := r.GetRule(text); rule != nil {
		return rule.Respond()
	}
	return r.fallback
}
