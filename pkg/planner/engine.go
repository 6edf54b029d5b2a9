package planner

import (
	"sort"
	"sync/atomic"

	"github.com/metroplan/metroplan/pkg/fares"
	"github.com/metroplan/metroplan/pkg/mndf"
	"github.com/metroplan/metroplan/pkg/network"
	"github.com/metroplan/metroplan/pkg/routing"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/exp/slices"
)

// DefaultPassengerTypeRef is priced when a request names no passenger types.
const DefaultPassengerTypeRef = "adult"

// Engine pairs the network snapshot with its fare table behind a single
// atomically swapped pointer. Queries read one consistent pair for their
// whole lifetime; Rebuild is the only writer.
type Engine struct {
	state atomic.Pointer[engineState]
}

type engineState struct {
	snapshot  *network.Snapshot
	fareTable *fares.Table
}

func NewEngine() *Engine {
	return &Engine{}
}

// Rebuild constructs a brand-new snapshot and fare table and swaps them in.
// All-or-nothing: any integrity failure leaves the previous pair in effect.
func (e *Engine) Rebuild(stations []mndf.Station, lines []mndf.Line, transferLinks []mndf.TransferLink, fareRules []mndf.FareRule, passengerTypes []mndf.PassengerType, groupBands []mndf.GroupDiscountBand) error {
	snapshot, err := network.BuildSnapshot(stations, lines, transferLinks)
	if err != nil {
		return err
	}

	fareTable, err := fares.BuildTable(fareRules, passengerTypes, groupBands, stations, lines)
	if err != nil {
		return err
	}

	e.state.Store(&engineState{snapshot: snapshot, fareTable: fareTable})

	log.Info().
		Int("stations", len(snapshot.Stations)).
		Int("lines", len(snapshot.Lines)).
		Int("edges", snapshot.EdgeCount()).
		Msg("Swapped in new network snapshot")

	return nil
}

func (e *Engine) Snapshot() *network.Snapshot {
	if state := e.state.Load(); state != nil {
		return state.snapshot
	}

	return nil
}

func (e *Engine) FareTable() *fares.Table {
	if state := e.state.Load(); state != nil {
		return state.fareTable
	}

	return nil
}

type PlanRequest struct {
	Origin      string
	Destination string

	Preference mndf.Preference

	PassengerTypes []string
	Group          bool
	GroupSize      int

	Alternatives int

	// Per-request service status, never persisted
	Overlay network.Overlay
}

// Plan validates the request, searches for up to Alternatives diverse
// itineraries and prices each one for every requested passenger type. The
// result is ranked by objective score ascending. Zero itineraries is always
// an explicit NoPathError, never an empty success.
func (e *Engine) Plan(request PlanRequest) ([]mndf.PricedItinerary, error) {
	state := e.state.Load()
	if state == nil {
		return nil, NotReadyError
	}

	if _, exists := state.snapshot.Station(request.Origin); !exists {
		return nil, &StationNotFoundError{StationRef: request.Origin}
	}
	if _, exists := state.snapshot.Station(request.Destination); !exists {
		return nil, &StationNotFoundError{StationRef: request.Destination}
	}
	if request.Origin == request.Destination {
		return nil, &StationNotFoundError{
			StationRef: request.Destination,
			Reason:     "origin and destination are the same station",
		}
	}

	weights, err := request.Preference.Weights()
	if err != nil {
		return nil, err
	}

	graph := state.snapshot.WithOverlay(request.Overlay)

	itineraries, err := routing.FindAlternatives(graph, request.Origin, request.Destination, weights, request.Alternatives)
	if err != nil {
		return nil, err
	}
	if len(itineraries) == 0 {
		return nil, routing.NoPathError
	}

	var passengerTypes []string
	for _, passengerTypeRef := range request.PassengerTypes {
		if !slices.Contains(passengerTypes, passengerTypeRef) {
			passengerTypes = append(passengerTypes, passengerTypeRef)
		}
	}
	if len(passengerTypes) == 0 {
		passengerTypes = []string{DefaultPassengerTypeRef}
	}

	priced := make([]mndf.PricedItinerary, len(itineraries))

	pricingPool := pool.New().WithErrors()
	for index := range itineraries {
		pricingPool.Go(func() error {
			itinerary := itineraries[index]

			fareList := make([]mndf.PassengerFare, 0, len(passengerTypes))
			for _, passengerTypeRef := range passengerTypes {
				breakdown, err := state.fareTable.Price(&itinerary, passengerTypeRef, request.Group, request.GroupSize)
				if err != nil {
					return err
				}

				fareList = append(fareList, mndf.PassengerFare{
					PassengerTypeRef: passengerTypeRef,
					Breakdown:        *breakdown,
				})
			}

			priced[index] = mndf.PricedItinerary{
				Itinerary: itinerary,
				Fares:     fareList,
			}

			return nil
		})
	}

	if err := pricingPool.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(priced, func(i, j int) bool {
		return routing.ItineraryLess(&priced[i].Itinerary, &priced[j].Itinerary)
	})

	return priced, nil
}

// Price quotes a fare for an already-known itinerary without a full plan.
func (e *Engine) Price(itinerary *mndf.Itinerary, passengerTypeRef string, isGroup bool, groupSize int) (*mndf.FareBreakdown, error) {
	state := e.state.Load()
	if state == nil {
		return nil, NotReadyError
	}

	return state.fareTable.Price(itinerary, passengerTypeRef, isGroup, groupSize)
}
