package routing

import (
	"container/heap"

	"github.com/metroplan/metroplan/pkg/mndf"
	"github.com/metroplan/metroplan/pkg/network"
)

// DefaultMaxFrontierPops bounds a single search. Real networks here are tens
// of stations so hitting it means something is badly wrong.
const DefaultMaxFrontierPops = 10000

// FindBest runs an early-exit Dijkstra over the graph and returns the single
// best itinerary under the given objective weights.
func FindBest(graph network.Graph, origin string, destination string, weights mndf.ObjectiveWeights) (*mndf.Itinerary, error) {
	return findBest(graph, origin, destination, weights, nil, DefaultMaxFrontierPops)
}

func findBest(graph network.Graph, origin string, destination string, weights mndf.ObjectiveWeights, excludedEdges map[string]bool, maxFrontierPops int) (*mndf.Itinerary, error) {
	queue := &frontier{
		&frontierItem{station: origin},
	}
	heap.Init(queue)

	visited := map[string]bool{}
	pops := 0

	for queue.Len() > 0 {
		item := heap.Pop(queue).(*frontierItem)

		pops++
		if pops > maxFrontierPops {
			return nil, &SearchBudgetExceededError{FrontierPops: maxFrontierPops}
		}

		if visited[item.station] {
			continue
		}
		visited[item.station] = true

		if item.station == destination {
			return buildItinerary(item), nil
		}

		for _, edge := range graph.Neighbours(item.station) {
			if visited[edge.Destination] {
				continue
			}
			if excludedEdges[edge.Key()] {
				continue
			}

			next := &frontierItem{
				station:    edge.Destination,
				score:      item.score + weights.EdgeScore(&edge),
				transfers:  item.transfers,
				distance:   item.distance + edge.Distance,
				travelTime: item.travelTime + edge.TravelTime,
				path:       append(append([]mndf.Edge{}, item.path...), edge),
			}

			if edge.Kind == mndf.EdgeKindTransfer {
				next.transfers++
			}

			heap.Push(queue, next)
		}
	}

	return nil, NoPathError
}

func buildItinerary(item *frontierItem) *mndf.Itinerary {
	itinerary := &mndf.Itinerary{
		TotalTravelTime: item.travelTime,
		TotalDistance:   item.distance,
		Transfers:       item.transfers,
		Score:           item.score,
	}

	for _, edge := range item.path {
		itinerary.Segments = append(itinerary.Segments, mndf.Segment{
			Kind:        edge.Kind,
			Origin:      edge.Origin,
			Destination: edge.Destination,
			LineRef:     edge.LineRef,
			TravelTime:  edge.TravelTime,
			Distance:    edge.Distance,
			Cost:        edge.Cost,
			TransferFee: edge.TransferFee,
		})
	}

	return itinerary
}
