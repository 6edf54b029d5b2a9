package network

import (
	"time"

	"github.com/metroplan/metroplan/pkg/mndf"
	"github.com/rs/zerolog/log"
)

// Graph is the read view the route finder traverses. Both a Snapshot and an
// overlay view over one satisfy it.
type Graph interface {
	Neighbours(stationIdentifier string) []mndf.Edge
	Station(stationIdentifier string) (*mndf.Station, bool)
}

// Snapshot is a fully built, immutable network graph. It is never mutated
// after BuildSnapshot returns; a rebuild produces a new Snapshot.
type Snapshot struct {
	Stations map[string]*mndf.Station
	Lines    map[string]*mndf.Line

	adjacency map[string][]mndf.Edge
	edgeCount int

	BuiltAt time.Time
}

const defaultSegmentTravelTime = 3 // minutes, when a line specifies none

func BuildSnapshot(stations []mndf.Station, lines []mndf.Line, transferLinks []mndf.TransferLink) (*Snapshot, error) {
	snapshot := &Snapshot{
		Stations:  map[string]*mndf.Station{},
		Lines:     map[string]*mndf.Line{},
		adjacency: map[string][]mndf.Edge{},
		BuiltAt:   time.Now(),
	}

	for index, station := range stations {
		if station.PrimaryIdentifier == "" {
			return nil, &IntegrityError{Reason: "station without a primary identifier"}
		}

		snapshot.Stations[station.PrimaryIdentifier] = &stations[index]
		snapshot.adjacency[station.PrimaryIdentifier] = nil
	}

	for index, line := range lines {
		snapshot.Lines[line.PrimaryIdentifier] = &lines[index]

		if line.Status != mndf.LineStatusActive {
			// Stations stay addressable but the line contributes no edges
			continue
		}

		if len(line.StationRefs) < 2 {
			return nil, &IntegrityError{
				Reason:  "active line has fewer than two stations",
				LineRef: line.PrimaryIdentifier,
			}
		}

		for i := 0; i < len(line.StationRefs)-1; i++ {
			origin, originExists := snapshot.Stations[line.StationRefs[i]]
			destination, destinationExists := snapshot.Stations[line.StationRefs[i+1]]

			if !originExists || !destinationExists {
				return nil, &IntegrityError{
					Reason:  "line references an unknown station",
					LineRef: line.PrimaryIdentifier,
				}
			}

			snapshot.addRideEdge(&line, origin, destination)
			snapshot.addRideEdge(&line, destination, origin)
		}
	}

	for _, link := range transferLinks {
		if _, exists := snapshot.Stations[link.StationA]; !exists {
			return nil, &IntegrityError{Reason: "transfer link references an unknown station"}
		}
		if _, exists := snapshot.Stations[link.StationB]; !exists {
			return nil, &IntegrityError{Reason: "transfer link references an unknown station"}
		}

		// Symmetric pair of directed transfer edges
		snapshot.addTransferEdge(link.StationA, link.StationB, &link)
		snapshot.addTransferEdge(link.StationB, link.StationA, &link)
	}

	log.Debug().
		Int("stations", len(snapshot.Stations)).
		Int("lines", len(snapshot.Lines)).
		Int("edges", snapshot.edgeCount).
		Msg("Built network snapshot")

	return snapshot, nil
}

func (s *Snapshot) addRideEdge(line *mndf.Line, origin *mndf.Station, destination *mndf.Station) {
	distance := 0.0
	if origin.Location != nil && destination.Location != nil {
		distance = origin.Location.DistanceFrom(destination.Location)
	}

	travelTime := line.SegmentTravelTime
	if travelTime == 0 {
		travelTime = defaultSegmentTravelTime
	}

	s.addEdge(mndf.Edge{
		Origin:      origin.PrimaryIdentifier,
		Destination: destination.PrimaryIdentifier,
		LineRef:     line.PrimaryIdentifier,
		Kind:        mndf.EdgeKindRide,
		TravelTime:  travelTime,
		Distance:    distance,
		Cost:        line.SegmentCost,
	})
}

func (s *Snapshot) addTransferEdge(origin string, destination string, link *mndf.TransferLink) {
	s.addEdge(mndf.Edge{
		Origin:      origin,
		Destination: destination,
		Kind:        mndf.EdgeKindTransfer,
		TravelTime:  link.WalkingTime,
		Distance:    link.WalkingDistance,
		TransferFee: link.Fee,
	})
}

func (s *Snapshot) addEdge(edge mndf.Edge) {
	s.adjacency[edge.Origin] = append(s.adjacency[edge.Origin], edge)
	s.edgeCount++
}

func (s *Snapshot) Neighbours(stationIdentifier string) []mndf.Edge {
	return s.adjacency[stationIdentifier]
}

func (s *Snapshot) Station(stationIdentifier string) (*mndf.Station, bool) {
	station, exists := s.Stations[stationIdentifier]
	return station, exists
}

func (s *Snapshot) EdgeCount() int {
	return s.edgeCount
}
