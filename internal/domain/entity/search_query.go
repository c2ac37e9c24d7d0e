package entity

import "time"

// SearchQuery holds the free-text fragments extracted from a natural
// language search. An empty field means no constraint on that dimension.
type SearchQuery struct {
	Destination string `json:"destination,omitempty" bson:"destination,omitempty"`
	Origin      string `json:"origin,omitempty" bson:"origin,omitempty"`
	Time        string `json:"time,omitempty" bson:"time,omitempty"`
	Date        string `json:"date,omitempty" bson:"date,omitempty"`
	Airline     string `json:"airline,omitempty" bson:"airline,omitempty"`
}

// IsEmpty reports whether no field was extracted
func (q SearchQuery) IsEmpty() bool {
	return q == SearchQuery{}
}

// SearchLog is the audit record of a single natural language search
type SearchLog struct {
	ID          string      `bson:"_id,omitempty"`
	Query       string      `bson:"query"`
	Parsed      SearchQuery `bson:"parsed"`
	ResultCount int         `bson:"resultCount"`
	FlightIDs   []uint      `bson:"flightIds"`
	Unfiltered  bool        `bson:"unfiltered"`
	CreatedAt   time.Time   `bson:"createdAt"`
}
