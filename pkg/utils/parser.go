package utils

import (
	"regexp"
	"strings"

	"airport-ops-service/internal/domain/entity"
)

// QueryParser extracts search fields from free text with fixed pattern rules
type QueryParser struct {
	destination *regexp.Regexp
	origin      *regexp.Regexp
	time        *regexp.Regexp
	date        *regexp.Regexp
	airlines    []string
}

// NewQueryParser compiles the extraction patterns.
// The "to" and "from" anchors are not word-bounded, so they also fire inside words.
func NewQueryParser() *QueryParser {
	return &QueryParser{
		destination: regexp.MustCompile(`to\s+([a-z\s]+?)(?:\s+(?:after|before|on|at)|\s*$)`),
		origin:      regexp.MustCompile(`from\s+([a-z\s]+?)(?:\s+(?:to|after|before|on|at)|\s*$)`),
		time:        regexp.MustCompile(`(?:after|at|before)\s+(\d{1,2}(?::\d{2})?\s*(?:am|pm)?)`),
		date:        regexp.MustCompile(`\b(on|today|tomorrow|yesterday)\b`),
		airlines:    KnownAirlines(),
	}
}

// Parse never fails: fields that cannot be extracted stay empty
func (p *QueryParser) Parse(text string) entity.SearchQuery {
	lower := strings.ToLower(text)

	return entity.SearchQuery{
		Destination: firstGroup(p.destination, lower),
		Origin:      firstGroup(p.origin, lower),
		Time:        firstGroup(p.time, lower),
		Date:        firstGroup(p.date, lower),
		Airline:     p.matchAirline(lower),
	}
}

func (p *QueryParser) matchAirline(lower string) string {
	for _, airline := range p.airlines {
		if strings.Contains(lower, airline) {
			return airline
		}
	}
	return ""
}

// firstGroup returns the trimmed first capture group of the leftmost match
func firstGroup(re *regexp.Regexp, s string) string {
	match := re.FindStringSubmatch(s)
	if len(match) < 2 {
		return ""
	}
	return strings.TrimSpace(match[1])
}
