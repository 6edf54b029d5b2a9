package journeyplanner

import (
	"github.com/metroplan/metroplan/pkg/dataaggregator/query"
	"github.com/metroplan/metroplan/pkg/mndf"
	"github.com/metroplan/metroplan/pkg/planner"
)

func (s Source) JourneyPlanQuery(q query.JourneyPlan) ([]mndf.PricedItinerary, error) {
	return planner.GlobalEngine.Plan(planner.PlanRequest{
		Origin:         q.Origin,
		Destination:    q.Destination,
		Preference:     q.Preference,
		PassengerTypes: q.PassengerTypes,
		Group:          q.Group,
		GroupSize:      q.GroupSize,
		Alternatives:   q.Count,
		Overlay:        q.Overlay,
	})
}
