package fares

import (
	"sort"
	"time"

	"github.com/metroplan/metroplan/pkg/mndf"
	"github.com/rs/zerolog/log"
)

// Table is the immutable fare lookup for one network snapshot: fare rules
// flattened to (line, zone span), passenger discount schedules and the group
// discount bands. Built once, replaced wholesale on rebuild.
type Table struct {
	rules          map[string]map[int]mndf.FareRule
	passengerTypes map[string]*mndf.PassengerType
	groupBands     []mndf.GroupDiscountBand
	stationZones   map[string]int

	BuiltAt time.Time
}

func BuildTable(fareRules []mndf.FareRule, passengerTypes []mndf.PassengerType, groupBands []mndf.GroupDiscountBand, stations []mndf.Station, lines []mndf.Line) (*Table, error) {
	table := &Table{
		rules:          map[string]map[int]mndf.FareRule{},
		passengerTypes: map[string]*mndf.PassengerType{},
		stationZones:   map[string]int{},
		BuiltAt:        time.Now(),
	}

	for _, rule := range fareRules {
		if table.rules[rule.LineRef] == nil {
			table.rules[rule.LineRef] = map[int]mndf.FareRule{}
		}
		table.rules[rule.LineRef][rule.ZoneSpan] = rule
	}

	for index, passengerType := range passengerTypes {
		table.passengerTypes[passengerType.PrimaryIdentifier] = &passengerTypes[index]
	}

	table.groupBands = append(table.groupBands, groupBands...)
	sort.Slice(table.groupBands, func(i, j int) bool {
		return table.groupBands[i].MinSize < table.groupBands[j].MinSize
	})

	for _, station := range stations {
		table.stationZones[station.PrimaryIdentifier] = station.Zone
	}

	// Every zone span a line's edges can traverse must have a rule. A gap
	// found here is a failed rebuild, not a pricing-time surprise.
	for _, line := range lines {
		if line.Status != mndf.LineStatusActive {
			continue
		}

		for i := 0; i < len(line.StationRefs)-1; i++ {
			originZone, originKnown := table.stationZones[line.StationRefs[i]]
			destinationZone, destinationKnown := table.stationZones[line.StationRefs[i+1]]
			if !originKnown || !destinationKnown {
				continue
			}

			span := zoneSpan(originZone, destinationZone)
			if _, exists := table.rules[line.PrimaryIdentifier][span]; !exists {
				return nil, &IntegrityError{
					Reason:  "fare rules do not cover every zone span on the line",
					LineRef: line.PrimaryIdentifier,
				}
			}
		}
	}

	log.Debug().
		Int("lines", len(table.rules)).
		Int("passenger_types", len(table.passengerTypes)).
		Int("group_bands", len(table.groupBands)).
		Msg("Built fare table")

	return table, nil
}

func (t *Table) PassengerType(reference string) (*mndf.PassengerType, bool) {
	passengerType, exists := t.passengerTypes[reference]
	return passengerType, exists
}

func (t *Table) PassengerTypes() []mndf.PassengerType {
	var passengerTypes []mndf.PassengerType
	for _, passengerType := range t.passengerTypes {
		passengerTypes = append(passengerTypes, *passengerType)
	}

	sort.Slice(passengerTypes, func(i, j int) bool {
		return passengerTypes[i].PrimaryIdentifier < passengerTypes[j].PrimaryIdentifier
	})

	return passengerTypes
}

func zoneSpan(a int, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}
