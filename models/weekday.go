package models

import "fmt"

// Weekday is a day name as stored on availability and booking documents.
type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
	Sunday    Weekday = "Sun"
)

// AllWeekdays lists every weekday in display order.
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday validates a weekday name coming off the wire.
func ParseWeekday(s string) (Weekday, error) {
	for _, d := range AllWeekdays {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown weekday %q", s)
}
