package fares

import (
	"testing"

	"github.com/metroplan/metroplan/pkg/mndf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFareRules() []mndf.FareRule {
	return []mndf.FareRule{
		{LineRef: "LINE:NORTH", ZoneSpan: 0, BaseFare: 10},
		{LineRef: "LINE:NORTH", ZoneSpan: 1, BaseFare: 15, PerStationFare: 5},
		{LineRef: "LINE:EAST", ZoneSpan: 0, BaseFare: 10},
	}
}

func testPassengerTypes() []mndf.PassengerType {
	return []mndf.PassengerType{
		{PrimaryIdentifier: "adult", Name: "Adult"},
		{PrimaryIdentifier: "child", Name: "Child", DiscountPercent: 50, AgeMax: 12},
		{PrimaryIdentifier: "senior", Name: "Senior", DiscountPercent: 30, AgeMin: 60},
	}
}

func testGroupBands() []mndf.GroupDiscountBand {
	return []mndf.GroupDiscountBand{
		{MinSize: 20, DiscountPercent: 20},
		{MinSize: 5, DiscountPercent: 10},
		{MinSize: 10, DiscountPercent: 15},
	}
}

func testZonedStations() []mndf.Station {
	return []mndf.Station{
		{PrimaryIdentifier: "STN:A", Zone: 1},
		{PrimaryIdentifier: "STN:B", Zone: 1},
		{PrimaryIdentifier: "STN:C", Zone: 2},
		{PrimaryIdentifier: "STN:B2", Zone: 1},
		{PrimaryIdentifier: "STN:D", Zone: 1},
	}
}

func testFaredLines() []mndf.Line {
	return []mndf.Line{
		{
			PrimaryIdentifier: "LINE:NORTH",
			Status:            mndf.LineStatusActive,
			StationRefs:       []string{"STN:A", "STN:B", "STN:C"},
		},
		{
			PrimaryIdentifier: "LINE:EAST",
			Status:            mndf.LineStatusActive,
			StationRefs:       []string{"STN:B2", "STN:D"},
		},
	}
}

func buildTestTable(t *testing.T) *Table {
	t.Helper()

	table, err := BuildTable(testFareRules(), testPassengerTypes(), testGroupBands(), testZonedStations(), testFaredLines())
	require.NoError(t, err)

	return table
}

func TestBuildTable(t *testing.T) {
	table := buildTestTable(t)

	passengerType, exists := table.PassengerType("child")
	require.True(t, exists)
	assert.Equal(t, 50.0, passengerType.DiscountPercent)

	_, exists = table.PassengerType("infant")
	assert.False(t, exists)
}

func TestBuildTableZoneCoverageGap(t *testing.T) {
	// The B to C edge crosses a zone boundary but only span 0 is priced
	rules := []mndf.FareRule{
		{LineRef: "LINE:NORTH", ZoneSpan: 0, BaseFare: 10},
		{LineRef: "LINE:EAST", ZoneSpan: 0, BaseFare: 10},
	}

	_, err := BuildTable(rules, testPassengerTypes(), nil, testZonedStations(), testFaredLines())

	var integrityError *IntegrityError
	require.ErrorAs(t, err, &integrityError)
	assert.Equal(t, "LINE:NORTH", integrityError.LineRef)
}

func TestBuildTableIgnoresMaintenanceLines(t *testing.T) {
	lines := testFaredLines()
	lines[0].Status = mndf.LineStatusMaintenance

	// The north line's zone 1 span rule is gone but the line is closed, so
	// the gap does not fail the build
	rules := []mndf.FareRule{
		{LineRef: "LINE:EAST", ZoneSpan: 0, BaseFare: 10},
	}

	_, err := BuildTable(rules, testPassengerTypes(), nil, testZonedStations(), lines)
	assert.NoError(t, err)
}

func TestPassengerTypesSorted(t *testing.T) {
	table := buildTestTable(t)

	passengerTypes := table.PassengerTypes()
	require.Len(t, passengerTypes, 3)
	assert.Equal(t, "adult", passengerTypes[0].PrimaryIdentifier)
	assert.Equal(t, "child", passengerTypes[1].PrimaryIdentifier)
	assert.Equal(t, "senior", passengerTypes[2].PrimaryIdentifier)
}

func TestZoneSpan(t *testing.T) {
	assert.Equal(t, 0, zoneSpan(2, 2))
	assert.Equal(t, 1, zoneSpan(1, 2))
	assert.Equal(t, 1, zoneSpan(2, 1))
	assert.Equal(t, 3, zoneSpan(1, 4))
}
