package dataimporter

import (
	"testing"

	"github.com/metroplan/metroplan/pkg/fares"
	"github.com/metroplan/metroplan/pkg/mndf"
	"github.com/metroplan/metroplan/pkg/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDataset = `
operators:
  - id: "OP:TEST"
    name: "Test Operator"

lines:
  - id: "LINE:NORTH"
    name: "North Line"
    operator: "OP:TEST"
    status: active
    stations: ["STN:A", "STN:B"]
    segment_travel_time: 5
    segment_cost: 10

stations:
  - id: "STN:A"
    name: "Alpha"
    lat: 13.745
    lon: 100.534
    zone: 1
    line: "LINE:NORTH"
  - id: "STN:B"
    name: "Bravo"
    lat: 13.751
    lon: 100.541
    zone: 1
    line: "LINE:NORTH"

fare_rules:
  - line: "LINE:NORTH"
    zone_span: 0
    base_fare: 10

passenger_types:
  - id: adult
    name: Adult
  - id: child
    name: Child
    discount_percent: 50
    age_max: 12

group_discounts:
  - min_size: 5
    discount_percent: 10
`

func TestParseDataset(t *testing.T) {
	dataset, err := ParseDataset([]byte(validDataset))
	require.NoError(t, err)

	assert.Len(t, dataset.Lines, 1)
	assert.Len(t, dataset.Stations, 2)
	assert.Len(t, dataset.PassengerTypes, 2)
}

func TestParseDatasetRejectsInvalid(t *testing.T) {
	for _, testCase := range []struct {
		name     string
		contents string
	}{
		{
			name:     "not yaml",
			contents: "{{{{",
		},
		{
			name: "line with a single station",
			contents: `
lines:
  - id: "LINE:STUB"
    name: "Stub"
    operator: "OP:TEST"
    status: active
    stations: ["STN:A"]
stations:
  - { id: "STN:A", name: "Alpha", line: "LINE:STUB" }
  - { id: "STN:B", name: "Bravo", line: "LINE:STUB" }
fare_rules:
  - { line: "LINE:STUB", zone_span: 0, base_fare: 10 }
passenger_types:
  - { id: adult, name: Adult }
`,
		},
		{
			name: "unknown line status",
			contents: `
lines:
  - id: "LINE:NORTH"
    name: "North"
    operator: "OP:TEST"
    status: closed
    stations: ["STN:A", "STN:B"]
stations:
  - { id: "STN:A", name: "Alpha", line: "LINE:NORTH" }
  - { id: "STN:B", name: "Bravo", line: "LINE:NORTH" }
fare_rules:
  - { line: "LINE:NORTH", zone_span: 0, base_fare: 10 }
passenger_types:
  - { id: adult, name: Adult }
`,
		},
		{
			name: "transfer link to itself",
			contents: `
lines:
  - id: "LINE:NORTH"
    name: "North"
    operator: "OP:TEST"
    status: active
    stations: ["STN:A", "STN:B"]
stations:
  - { id: "STN:A", name: "Alpha", line: "LINE:NORTH" }
  - { id: "STN:B", name: "Bravo", line: "LINE:NORTH" }
transfer_links:
  - { station_a: "STN:A", station_b: "STN:A", walking_time: 2 }
fare_rules:
  - { line: "LINE:NORTH", zone_span: 0, base_fare: 10 }
passenger_types:
  - { id: adult, name: Adult }
`,
		},
		{
			name: "no fare rules",
			contents: `
lines:
  - id: "LINE:NORTH"
    name: "North"
    operator: "OP:TEST"
    status: active
    stations: ["STN:A", "STN:B"]
stations:
  - { id: "STN:A", name: "Alpha", line: "LINE:NORTH" }
  - { id: "STN:B", name: "Bravo", line: "LINE:NORTH" }
passenger_types:
  - { id: adult, name: Adult }
`,
		},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := ParseDataset([]byte(testCase.contents))
			assert.Error(t, err)
		})
	}
}

func TestDatasetConvert(t *testing.T) {
	dataset, err := ParseDataset([]byte(validDataset))
	require.NoError(t, err)

	stations, lines, _, fareRules, passengerTypes, groupBands, err := dataset.Convert()
	require.NoError(t, err)

	require.Len(t, stations, 2)
	require.NotNil(t, stations[0].Location)
	assert.Equal(t, 13.745, stations[0].Location.Latitude)
	assert.Equal(t, 1, stations[0].Zone)

	require.Len(t, lines, 1)
	assert.Equal(t, mndf.LineStatusActive, lines[0].Status)
	assert.Equal(t, []string{"STN:A", "STN:B"}, lines[0].StationRefs)

	require.Len(t, fareRules, 1)
	assert.Equal(t, 10.0, fareRules[0].BaseFare)

	require.Len(t, passengerTypes, 2)
	assert.Equal(t, 50.0, passengerTypes[1].DiscountPercent)

	require.Len(t, groupBands, 1)
	assert.Equal(t, 5, groupBands[0].MinSize)
}

// The bundled dataset has to stay buildable into a snapshot and fare table
// or the seed command breaks.
func TestBundledDatasetIsConsistent(t *testing.T) {
	dataset, err := LoadDataset("../../data/bangkok.yaml")
	require.NoError(t, err)

	stations, lines, transferLinks, fareRules, passengerTypes, groupBands, err := dataset.Convert()
	require.NoError(t, err)

	_, err = network.BuildSnapshot(stations, lines, transferLinks)
	require.NoError(t, err)

	_, err = fares.BuildTable(fareRules, passengerTypes, groupBands, stations, lines)
	require.NoError(t, err)
}
