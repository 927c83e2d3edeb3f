package entity

import "fmt"

// Availability is a candidate's availability state as stored relationally.
type Availability string

const (
	// AvailableImmediately means the candidate can start right away.
	AvailableImmediately Availability = "immediate"
	// AvailableTwoWeeks means the candidate needs a two-week notice period.
	AvailableTwoWeeks Availability = "two_weeks"
	// AvailableOneMonth means the candidate needs a one-month notice period.
	AvailableOneMonth Availability = "one_month"
	// NotAvailable means the candidate is not open to offers.
	NotAvailable Availability = "not_available"
)

// availabilityPhrases is the single bidirectional table between the storage
// code and the human phrase used in canonical text. Unknown codes are an
// error rather than a silent default, so data-entry mistakes surface at sync
// time instead of producing misleading match results.
var availabilityPhrases = map[Availability]string{
	AvailableImmediately: "available immediately",
	AvailableTwoWeeks:    "available in two weeks",
	AvailableOneMonth:    "available in one month",
	NotAvailable:         "not currently available",
}

// ParseAvailability validates a storage code.
func ParseAvailability(s string) (Availability, error) {
	a := Availability(s)
	if _, ok := availabilityPhrases[a]; !ok {
		return "", fmt.Errorf("unknown availability %q", s)
	}
	return a, nil
}

// AvailabilityFromPhrase maps a human phrase back to its storage code.
func AvailabilityFromPhrase(phrase string) (Availability, error) {
	for code, p := range availabilityPhrases {
		if p == phrase {
			return code, nil
		}
	}
	return "", fmt.Errorf("unknown availability phrase %q", phrase)
}

// Phrase returns the human rendering used in canonical text.
func (a Availability) Phrase() string {
	return availabilityPhrases[a]
}

// String returns the storage code.
func (a Availability) String() string { return string(a) }
