package mndf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceWeights(t *testing.T) {
	fastest, err := Preference(PreferenceFastest).Weights()
	require.NoError(t, err)
	assert.Equal(t, 1.0, fastest.Time)

	cheapest, err := Preference(PreferenceCheapest).Weights()
	require.NoError(t, err)
	assert.Equal(t, 1.0, cheapest.Cost)
	assert.Equal(t, 0.0, cheapest.Time)

	fewest, err := Preference(PreferenceFewestTransfers).Weights()
	require.NoError(t, err)
	assert.Equal(t, 1000.0, fewest.TransferPenalty)

	_, err = Preference("scenic").Weights()
	assert.Error(t, err)
}

func TestEdgeScore(t *testing.T) {
	weights := ObjectiveWeights{Time: 1, Cost: 2, TransferPenalty: 100}

	ride := Edge{Kind: EdgeKindRide, TravelTime: 5, Cost: 10}
	assert.Equal(t, 25.0, weights.EdgeScore(&ride))

	transfer := Edge{Kind: EdgeKindTransfer, TravelTime: 3, TransferFee: 5}
	assert.Equal(t, 113.0, weights.EdgeScore(&transfer))
}
