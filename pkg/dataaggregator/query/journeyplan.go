package query

import (
	"github.com/metroplan/metroplan/pkg/mndf"
	"github.com/metroplan/metroplan/pkg/network"
)

type JourneyPlan struct {
	Origin      string
	Destination string

	Preference mndf.Preference

	PassengerTypes []string
	Group          bool
	GroupSize      int

	Count int

	Overlay network.Overlay
}
