package utils

import (
	"strings"
	"sync"

	"airport-ops-service/internal/domain/entity"
)

var (
	defaultParser     *QueryParser
	defaultParserOnce sync.Once
)

// ParseSearchQuery parses text with the shared default parser
func ParseSearchQuery(text string) entity.SearchQuery {
	defaultParserOnce.Do(func() {
		defaultParser = NewQueryParser()
	})
	return defaultParser.Parse(text)
}

// SplitKeywords splits a search fragment on whitespace, dropping empties
func SplitKeywords(fragment string) []string {
	return strings.Fields(fragment)
}
