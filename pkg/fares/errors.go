package fares

import "fmt"

// IntegrityError marks malformed fare data at table build time.
type IntegrityError struct {
	Reason  string
	LineRef string
}

func (e *IntegrityError) Error() string {
	if e.LineRef != "" {
		return fmt.Sprintf("fare integrity: %s (line %s)", e.Reason, e.LineRef)
	}

	return fmt.Sprintf("fare integrity: %s", e.Reason)
}

// FareRuleMissingError is an operational data gap discovered at pricing
// time. It should be surfaced for operator attention, not swallowed.
type FareRuleMissingError struct {
	LineRef  string
	ZoneSpan int
}

func (e *FareRuleMissingError) Error() string {
	return fmt.Sprintf("no fare rule for line %s zone span %d", e.LineRef, e.ZoneSpan)
}

type InvalidPassengerTypeError struct {
	PassengerTypeRef string
}

func (e *InvalidPassengerTypeError) Error() string {
	return fmt.Sprintf("unknown passenger type %q", e.PassengerTypeRef)
}
