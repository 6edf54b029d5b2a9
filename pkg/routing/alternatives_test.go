package routing

import (
	"testing"

	"github.com/metroplan/metroplan/pkg/mndf"
	"github.com/metroplan/metroplan/pkg/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two parallel lines give exactly two structurally distinct routes between
// the endpoints.
func parallelGraph(t *testing.T) *network.Snapshot {
	return buildGraph(t,
		[]mndf.Station{
			{PrimaryIdentifier: "STN:A", Zone: 1},
			{PrimaryIdentifier: "STN:B", Zone: 1},
			{PrimaryIdentifier: "STN:C", Zone: 1},
			{PrimaryIdentifier: "STN:D", Zone: 1},
		},
		[]mndf.Line{
			{
				PrimaryIdentifier: "LINE:ONE",
				Status:            mndf.LineStatusActive,
				StationRefs:       []string{"STN:A", "STN:B", "STN:C"},
				SegmentTravelTime: 5,
			},
			{
				PrimaryIdentifier: "LINE:TWO",
				Status:            mndf.LineStatusActive,
				StationRefs:       []string{"STN:A", "STN:D", "STN:C"},
				SegmentTravelTime: 7,
			},
		},
		nil,
	)
}

func TestFindAlternativesFewerThanRequested(t *testing.T) {
	graph := parallelGraph(t)

	itineraries, err := FindAlternatives(graph, "STN:A", "STN:C", mustWeights(t, mndf.PreferenceFastest), 5)
	require.NoError(t, err)

	// Only two distinct routes exist so five cannot be produced
	require.Len(t, itineraries, 2)
	assert.Equal(t, 10, itineraries[0].TotalTravelTime)
	assert.Equal(t, 14, itineraries[1].TotalTravelTime)
	assert.False(t, itineraries[0].SameEdges(&itineraries[1]))
}

func TestFindAlternativesRankedBestFirst(t *testing.T) {
	graph := parallelGraph(t)

	itineraries, err := FindAlternatives(graph, "STN:A", "STN:C", mustWeights(t, mndf.PreferenceFastest), 3)
	require.NoError(t, err)

	for i := 1; i < len(itineraries); i++ {
		assert.False(t, ItineraryLess(&itineraries[i], &itineraries[i-1]))
	}
}

func TestFindAlternativesClampsRequestCount(t *testing.T) {
	graph := parallelGraph(t)

	// Below the minimum still searches for MinAlternatives
	itineraries, err := FindAlternatives(graph, "STN:A", "STN:C", mustWeights(t, mndf.PreferenceFastest), 0)
	require.NoError(t, err)
	assert.Len(t, itineraries, 2)

	// Above the maximum is capped, not an error
	itineraries, err = FindAlternatives(graph, "STN:A", "STN:C", mustWeights(t, mndf.PreferenceFastest), 50)
	require.NoError(t, err)
	assert.Len(t, itineraries, 2)
}

func TestFindAlternativesSingleRoute(t *testing.T) {
	graph := interchangeGraph(t)

	itineraries, err := FindAlternatives(graph, "STN:A", "STN:C", mustWeights(t, mndf.PreferenceFastest), 3)
	require.NoError(t, err)

	require.Len(t, itineraries, 1)
	assert.Len(t, itineraries[0].Segments, 2)
}

func TestFindAlternativesNoPath(t *testing.T) {
	graph := interchangeGraph(t)

	_, err := FindAlternatives(graph, "STN:A", "STN:LONELY", mustWeights(t, mndf.PreferenceFastest), 3)
	assert.ErrorIs(t, err, NoPathError)
}

func TestItineraryLess(t *testing.T) {
	base := mndf.Itinerary{
		Segments: []mndf.Segment{{Destination: "STN:B"}},
		Score:    10,
	}

	higherScore := base
	higherScore.Score = 12
	assert.True(t, ItineraryLess(&base, &higherScore))
	assert.False(t, ItineraryLess(&higherScore, &base))

	moreTransfers := base
	moreTransfers.Transfers = 2
	assert.True(t, ItineraryLess(&base, &moreTransfers))

	longerDistance := base
	longerDistance.TotalDistance = 4.2
	assert.True(t, ItineraryLess(&base, &longerDistance))

	laterStation := base
	laterStation.Segments = []mndf.Segment{{Destination: "STN:Z"}}
	assert.True(t, ItineraryLess(&base, &laterStation))

	// Full tie falls through to false both ways
	tied := base
	assert.False(t, ItineraryLess(&base, &tied))
	assert.False(t, ItineraryLess(&tied, &base))
}
