package fares

import "github.com/metroplan/metroplan/pkg/mndf"

// Price computes the itemized fare breakdown for one itinerary and one
// passenger type. Ride fares come from the owning line's zone rule, transfer
// segments add their fixed fee. The passenger discount applies to the ride
// subtotal only: fees are a fixed operational charge. A group discount band
// then applies to the post-discount total.
func (t *Table) Price(itinerary *mndf.Itinerary, passengerTypeRef string, isGroup bool, groupSize int) (*mndf.FareBreakdown, error) {
	passengerType, exists := t.passengerTypes[passengerTypeRef]
	if !exists {
		return nil, &InvalidPassengerTypeError{PassengerTypeRef: passengerTypeRef}
	}

	breakdown := &mndf.FareBreakdown{
		PassengerTypeRef:     passengerTypeRef,
		PassengerDiscountPct: passengerType.DiscountPercent,
		Currency:             mndf.CurrencyBaht,
	}

	for index, segment := range itinerary.Segments {
		item := mndf.FareBreakdownItem{
			SegmentIndex: index,
			Kind:         segment.Kind,
			LineRef:      segment.LineRef,
		}

		switch segment.Kind {
		case mndf.EdgeKindTransfer:
			item.TransferFee = segment.TransferFee
			breakdown.TransferFees += segment.TransferFee
		default:
			fare, err := t.rideSegmentFare(&segment)
			if err != nil {
				return nil, err
			}

			item.Fare = fare
			breakdown.RideSubtotal += fare
		}

		breakdown.Items = append(breakdown.Items, item)
	}

	breakdown.PassengerDiscountAmount = breakdown.RideSubtotal * passengerType.DiscountPercent / 100

	total := breakdown.RideSubtotal - breakdown.PassengerDiscountAmount + breakdown.TransferFees

	if isGroup {
		band := t.groupBand(groupSize)

		breakdown.GroupSize = groupSize
		breakdown.GroupDiscountPct = band.DiscountPercent
		breakdown.GroupDiscountAmount = total * band.DiscountPercent / 100

		total -= breakdown.GroupDiscountAmount
	}

	breakdown.Total = total

	return breakdown, nil
}

func (t *Table) rideSegmentFare(segment *mndf.Segment) (float64, error) {
	originZone, originKnown := t.stationZones[segment.Origin]
	destinationZone, destinationKnown := t.stationZones[segment.Destination]

	if !originKnown || !destinationKnown {
		return 0, &FareRuleMissingError{LineRef: segment.LineRef}
	}

	span := zoneSpan(originZone, destinationZone)

	rule, exists := t.rules[segment.LineRef][span]
	if !exists {
		return 0, &FareRuleMissingError{LineRef: segment.LineRef, ZoneSpan: span}
	}

	// One station advanced per ride edge, so exactly one per-station
	// increment on top of the zone base
	return rule.BaseFare + rule.PerStationFare, nil
}

// groupBand picks the largest band the group qualifies for. Discount never
// shrinks as the group grows.
func (t *Table) groupBand(groupSize int) mndf.GroupDiscountBand {
	var matched mndf.GroupDiscountBand

	for _, band := range t.groupBands {
		if groupSize >= band.MinSize {
			matched = band
		}
	}

	return matched
}
