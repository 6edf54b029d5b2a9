package network

import "github.com/metroplan/metroplan/pkg/mndf"

// Overlay carries per-request service status: closed edges and delay minutes
// keyed by edge key. It adjusts a single planning call without touching the
// shared snapshot.
type Overlay struct {
	ClosedEdges  map[string]bool
	DelayMinutes map[string]int
}

func (o *Overlay) Empty() bool {
	return len(o.ClosedEdges) == 0 && len(o.DelayMinutes) == 0
}

type overlayView struct {
	snapshot *Snapshot
	overlay  Overlay
}

// WithOverlay returns a filtered, weight-adjusted view of the snapshot.
func (s *Snapshot) WithOverlay(overlay Overlay) Graph {
	if overlay.Empty() {
		return s
	}

	return &overlayView{snapshot: s, overlay: overlay}
}

func (v *overlayView) Neighbours(stationIdentifier string) []mndf.Edge {
	var edges []mndf.Edge

	for _, edge := range v.snapshot.Neighbours(stationIdentifier) {
		key := edge.Key()

		if v.overlay.ClosedEdges[key] {
			continue
		}

		if delay := v.overlay.DelayMinutes[key]; delay > 0 {
			edge.TravelTime += delay
		}

		edges = append(edges, edge)
	}

	return edges
}

func (v *overlayView) Station(stationIdentifier string) (*mndf.Station, bool) {
	return v.snapshot.Station(stationIdentifier)
}
