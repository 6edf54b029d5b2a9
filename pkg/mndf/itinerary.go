package mndf

type Itinerary struct {
	Segments []Segment `groups:"basic"`

	TotalTravelTime int     `groups:"basic"` // minutes
	TotalDistance   float64 `groups:"basic"` // kilometres
	Transfers       int     `groups:"basic"`

	// Accumulated objective score under the preference the itinerary was
	// searched with
	Score float64 `groups:"basic"`
}

type Segment struct {
	Kind EdgeKind `groups:"basic"`

	Origin      string `groups:"basic"`
	Destination string `groups:"basic"`
	LineRef     string `groups:"basic"`

	TravelTime  int     `groups:"basic"`
	Distance    float64 `groups:"detailed"`
	Cost        float64 `groups:"detailed"`
	TransferFee float64 `groups:"detailed"`
}

// EdgeKeys returns the identity set of the edges this itinerary traverses.
func (i *Itinerary) EdgeKeys() map[string]bool {
	keys := map[string]bool{}

	for _, segment := range i.Segments {
		edge := Edge{
			Origin:      segment.Origin,
			Destination: segment.Destination,
			LineRef:     segment.LineRef,
			Kind:        segment.Kind,
		}
		keys[edge.Key()] = true
	}

	return keys
}

// SameEdges reports whether two itineraries traverse an identical edge set.
func (i *Itinerary) SameEdges(other *Itinerary) bool {
	if len(i.Segments) != len(other.Segments) {
		return false
	}

	otherKeys := other.EdgeKeys()
	for key := range i.EdgeKeys() {
		if !otherKeys[key] {
			return false
		}
	}

	return true
}

type PricedItinerary struct {
	Itinerary Itinerary `groups:"basic"`

	Fares []PassengerFare `groups:"basic"`
}

type PassengerFare struct {
	PassengerTypeRef string        `groups:"basic"`
	Breakdown        FareBreakdown `groups:"basic"`
}
