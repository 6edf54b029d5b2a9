package routing

import (
	"sort"

	"github.com/metroplan/metroplan/pkg/mndf"
	"github.com/metroplan/metroplan/pkg/network"
)

const (
	MinAlternatives = 3
	MaxAlternatives = 5
)

// FindAlternatives returns up to maxResults structurally distinct
// itineraries, best first. It is a bounded Yen-style search: each round
// removes, one at a time, each edge used by the itineraries accepted so far
// and re-runs the finder on the pruned view. Fewer than maxResults results
// is a valid outcome once no distinct candidate remains.
func FindAlternatives(graph network.Graph, origin string, destination string, weights mndf.ObjectiveWeights, maxResults int) ([]mndf.Itinerary, error) {
	if maxResults < MinAlternatives {
		maxResults = MinAlternatives
	}
	if maxResults > MaxAlternatives {
		maxResults = MaxAlternatives
	}

	best, err := FindBest(graph, origin, destination, weights)
	if err != nil {
		return nil, err
	}

	accepted := []*mndf.Itinerary{best}

	for len(accepted) < maxResults {
		candidate := nextDistinctCandidate(graph, origin, destination, weights, accepted)
		if candidate == nil {
			break
		}

		accepted = append(accepted, candidate)
	}

	results := make([]mndf.Itinerary, 0, len(accepted))
	for _, itinerary := range accepted {
		results = append(results, *itinerary)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return ItineraryLess(&results[i], &results[j])
	})

	return results, nil
}

// nextDistinctCandidate prunes one used edge at a time and keeps the best
// resulting itinerary whose edge set matches none of the accepted ones.
func nextDistinctCandidate(graph network.Graph, origin string, destination string, weights mndf.ObjectiveWeights, accepted []*mndf.Itinerary) *mndf.Itinerary {
	var best *mndf.Itinerary

	for _, itinerary := range accepted {
		for _, segment := range itinerary.Segments {
			edge := mndf.Edge{
				Origin:      segment.Origin,
				Destination: segment.Destination,
				LineRef:     segment.LineRef,
				Kind:        segment.Kind,
			}

			candidate, err := findBest(graph, origin, destination, weights, map[string]bool{edge.Key(): true}, DefaultMaxFrontierPops)
			if err != nil {
				// A pruned view with no path means this exclusion produced
				// nothing, not that the whole request failed
				continue
			}

			if isDuplicate(candidate, accepted) {
				continue
			}

			if best == nil || ItineraryLess(candidate, best) {
				best = candidate
			}
		}
	}

	return best
}

func isDuplicate(candidate *mndf.Itinerary, accepted []*mndf.Itinerary) bool {
	for _, itinerary := range accepted {
		if candidate.SameEdges(itinerary) {
			return true
		}
	}

	return false
}

// ItineraryLess ranks itineraries the same way the finder breaks frontier
// ties: score, transfers, distance, then first diverging station identifier.
// The planner uses it to order its final result set.
func ItineraryLess(a *mndf.Itinerary, b *mndf.Itinerary) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	if a.Transfers != b.Transfers {
		return a.Transfers < b.Transfers
	}
	if a.TotalDistance != b.TotalDistance {
		return a.TotalDistance < b.TotalDistance
	}

	for i := 0; i < len(a.Segments) && i < len(b.Segments); i++ {
		if a.Segments[i].Destination != b.Segments[i].Destination {
			return a.Segments[i].Destination < b.Segments[i].Destination
		}
	}

	return len(a.Segments) < len(b.Segments)
}
