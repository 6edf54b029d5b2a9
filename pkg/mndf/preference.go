package mndf

import "fmt"

type Preference string

const (
	PreferenceFastest         Preference = "fastest"
	PreferenceCheapest                   = "cheapest"
	PreferenceFewestTransfers            = "fewest-transfers"
)

// ObjectiveWeights blend travel time, monetary cost and a per-transfer
// penalty into a single edge score.
type ObjectiveWeights struct {
	Time            float64
	Cost            float64
	TransferPenalty float64
}

// The small fastest-mode penalty stops zig-zagging between parallel lines on
// equal-time ties. The fewest-transfers penalty dominates any plausible
// time or cost total so transfer count is effectively lexicographic.
var preferenceWeights = map[Preference]ObjectiveWeights{
	PreferenceFastest:         {Time: 1, Cost: 0, TransferPenalty: 2},
	PreferenceCheapest:        {Time: 0, Cost: 1, TransferPenalty: 0},
	PreferenceFewestTransfers: {Time: 0, Cost: 0, TransferPenalty: 1000},
}

func (p Preference) Weights() (ObjectiveWeights, error) {
	weights, exists := preferenceWeights[p]
	if !exists {
		return ObjectiveWeights{}, fmt.Errorf("unknown journey preference %q", string(p))
	}

	return weights, nil
}

// EdgeScore scores a single edge traversal under these weights.
func (w ObjectiveWeights) EdgeScore(edge *Edge) float64 {
	score := w.Time*float64(edge.TravelTime) + w.Cost*(edge.Cost+edge.TransferFee)

	if edge.Kind == EdgeKindTransfer {
		score += w.TransferPenalty
	}

	return score
}
