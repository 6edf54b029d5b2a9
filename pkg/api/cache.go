package api

import (
	"github.com/metroplan/metroplan/pkg/api/routes"
	"github.com/metroplan/metroplan/pkg/dataaggregator/source/cachedresults"
)

func SetupPlanCache() {
	planCache := &cachedresults.Cache{}
	planCache.Setup()

	routes.PlanCache = planCache
}
