package mndf

type LineStatus string

const (
	LineStatusActive      LineStatus = "active"
	LineStatusMaintenance            = "maintenance"
)

type Line struct {
	PrimaryIdentifier string `groups:"basic"`

	Name        string `groups:"basic"`
	OperatorRef string `groups:"basic"`
	Colour      string `groups:"basic"`

	Status LineStatus `groups:"basic"`

	// Ordered sequence of Station PrimaryIdentifiers along the line
	StationRefs []string `groups:"detailed"`

	// Defaults applied to every ride edge generated between consecutive
	// stations of this line
	SegmentTravelTime int     `groups:"detailed"` // minutes
	SegmentCost       float64 `groups:"detailed"` // baht
}

type Operator struct {
	PrimaryIdentifier string `groups:"basic"`

	Name      string `groups:"basic"`
	RegionRef string `groups:"detailed"`
}
