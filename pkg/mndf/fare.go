package mndf

// FareRule gives the price of a single ride edge on a line, keyed by the
// number of zone boundaries the edge crosses.
type FareRule struct {
	LineRef  string
	ZoneSpan int

	BaseFare       float64
	PerStationFare float64
}

type PassengerType struct {
	PrimaryIdentifier string `groups:"basic"`

	Name            string  `groups:"basic"`
	DiscountPercent float64 `groups:"basic"`

	// Eligibility hints for the caller, not enforced by the engine
	AgeMin int `groups:"detailed"`
	AgeMax int `groups:"detailed"`
}

type GroupDiscountBand struct {
	MinSize         int
	DiscountPercent float64
}
