package mndf

import "fmt"

type EdgeKind string

const (
	EdgeKindRide     EdgeKind = "ride"
	EdgeKindTransfer          = "transfer"
)

type Edge struct {
	Origin      string
	Destination string
	LineRef     string

	Kind EdgeKind

	TravelTime  int     // minutes
	Distance    float64 // kilometres
	Cost        float64 // baht, base monetary cost of riding this edge
	TransferFee float64 // baht, only set on transfer edges
}

// Key uniquely identifies an edge within a snapshot.
func (e *Edge) Key() string {
	return fmt.Sprintf("%s>%s@%s#%s", e.Origin, e.Destination, e.LineRef, e.Kind)
}

type TransferLink struct {
	StationA string
	StationB string

	WalkingTime     int     // minutes
	WalkingDistance float64 // kilometres
	Fee             float64 // baht
}
