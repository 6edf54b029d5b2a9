package farequote

import (
	"reflect"

	"github.com/metroplan/metroplan/pkg/dataaggregator/query"
	"github.com/metroplan/metroplan/pkg/dataaggregator/source"
	"github.com/metroplan/metroplan/pkg/mndf"
	"github.com/metroplan/metroplan/pkg/planner"
)

type Source struct {
}

func (s Source) GetName() string {
	return "Fare Quote"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(mndf.FareBreakdown{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q.(type) {
	case query.FareQuote:
		return s.FareQuoteQuery(q.(query.FareQuote))
	default:
		return nil, source.UnsupportedSourceError
	}
}

func (s Source) FareQuoteQuery(q query.FareQuote) (*mndf.FareBreakdown, error) {
	return planner.GlobalEngine.Price(q.Itinerary, q.PassengerTypeRef, q.Group, q.GroupSize)
}
