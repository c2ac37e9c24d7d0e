package usecase

// ResponseRule defines the interface for canned chat responses
type ResponseRule interface {
	// CanHandle determines if this rule answers the given message
	CanHandle(text string) bool

	// Respond returns the canned reply text
	Respond() string
}

// ResponseRouter routes chat messages to the first matching rule
type ResponseRouter interface {
	// Register appends a rule; earlier rules take priority
	Register(rule ResponseRule)

	// GetRule returns the matching rule for a message, or nil
	GetRule(text string) ResponseRule
}

// Replier produces a deterministic reply for any message
type Replier interface {
	Reply(text string) string
}
