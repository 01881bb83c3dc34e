package search

import (
	"strings"

	"teacherdekho/models"
)

// Criteria is the set of listing filters. Zero-valued fields are inactive;
// active predicates are ANDed.
type Criteria struct {
	Query       string         `json:"query,omitempty"`
	Subject     string         `json:"subject,omitempty"`
	Class       string         `json:"class,omitempty"`
	Language    string         `json:"language,omitempty"`
	MinRating   float64        `json:"minRating,omitempty"`
	PriceBucket string         `json:"priceBucket,omitempty"` // lt500 | 500to1000 | gt1000
	Day         models.Weekday `json:"day,omitempty"`
}

// IsEmpty reports whether no predicate is active.
func (c Criteria) IsEmpty() bool {
	return c.Query == "" && c.Subject == "" && c.Class == "" && c.Language == "" &&
		c.MinRating == 0 && c.PriceBucket == "" && c.Day == ""
}

// Filter applies the criteria to an in-memory listing set. Empty criteria
// return the input unchanged. There is no pagination, ranking or index: the
// candidate set is small and fetched wholesale.
func Filter(listings []models.TeacherListing, c Criteria) []models.TeacherListing {
	if c.IsEmpty() {
		return listings
	}
	var out []models.TeacherListing
	for _, l := range listings {
		if matches(l, c) {
			out = append(out, l)
		}
	}
	return out
}

func matches(l models.TeacherListing, c Criteria) bool {
	if c.Query != "" && !matchesQuery(l, c.Query) {
		return false
	}
	if c.Subject != "" && !containsFold(l.Subjects, c.Subject) {
		return false
	}
	if c.Class != "" && !containsFold(l.Classes, c.Class) {
		return false
	}
	if c.Language != "" && !containsFold(l.Languages, c.Language) {
		return false
	}
	if c.MinRating > 0 && l.Rating < c.MinRating {
		return false
	}
	if c.PriceBucket != "" && !inPriceBucket(l.HourlyRate, c.PriceBucket) {
		return false
	}
	if c.Day != "" {
		ds, ok := l.Availability[c.Day]
		if !ok || !ds.Enabled {
			return false
		}
	}
	return true
}

// matchesQuery is the free-text predicate: a case-insensitive substring match
// against the teacher name or any subject.
func matchesQuery(l models.TeacherListing, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(l.Name), q) {
		return true
	}
	for _, s := range l.Subjects {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

func containsFold(values []string, want string) bool {
	w := strings.ToLower(want)
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), w) {
			return true
		}
	}
	return false
}

func inPriceBucket(rate float64, bucket string) bool {
	switch bucket {
	case "lt500":
		return rate < 500
	case "500to1000":
		return rate >= 500 && rate <= 1000
	case "gt1000":
		return rate > 1000
	default:
		return true
	}
}
