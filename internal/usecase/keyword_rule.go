package usecase

import (
	"strings"
)

// KeywordRule answers messages containing its keywords
type KeywordRule struct {
	name     string
	keywords []string
	matchAll bool
	response string
}

// NewAnyKeywordRule creates a rule matching when any keyword is contained in the message
func NewAnyKeywordRule(name, response string, keywords ...string) *KeywordRule {
	return newKeywordRule(name, response, false, keywords)
}

// NewAllKeywordsRule creates a rule matching only when every keyword is contained in the message
func NewAllKeywordsRule(name, response string, keywords ...string) *KeywordRule {
	return newKeywordRule(name, response, true, keywords)
}

func newKeywordRule(name, response string, matchAll bool, keywords []string) *KeywordRule {
	lowered := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		lowered = append(lowered, strings.ToLower(keyword))
	}
	return &KeywordRule{
		name:     name,
		keywords: lowered,
		matchAll: matchAll,
		response: response,
	}
}

// CanHandle checks the keywords against the lowercased message
func (r *KeywordRule) CanHandle(text string) bool {
	if len(r.keywords) == 0 {
		return false
	}

	text = strings.ToLower(text)
	for _, keyword := range r.keywords {
		found := strings.Contains(text, keyword)
		if r.matchAll && !found {
			return false
		}
		if !r.matchAll && found {
			return true
		}
	}
	return r.matchAll
}

// Respond returns the rule's reply
func (r *KeywordRule) Respond() string {
	return r.response
}

// Name identifies the rule in logs
func (r *KeywordRule) Name() string {
	return r.name
}

func (r *KeywordRule) String() string {
	return r.name
}
