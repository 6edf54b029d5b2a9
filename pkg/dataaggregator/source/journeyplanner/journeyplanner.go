package journeyplanner

import (
	"reflect"

	"github.com/metroplan/metroplan/pkg/dataaggregator/query"
	"github.com/metroplan/metroplan/pkg/dataaggregator/source"
	"github.com/metroplan/metroplan/pkg/mndf"
)

type Source struct {
}

func (s Source) GetName() string {
	return "Journey Planner"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]mndf.PricedItinerary{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q.(type) {
	case query.JourneyPlan:
		return s.JourneyPlanQuery(q.(query.JourneyPlan))
	default:
		return nil, source.UnsupportedSourceError
	}
}
