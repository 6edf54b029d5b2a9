package query

import "github.com/metroplan/metroplan/pkg/mndf"

type FareQuote struct {
	Itinerary *mndf.Itinerary

	PassengerTypeRef string
	Group            bool
	GroupSize        int
}
