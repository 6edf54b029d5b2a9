package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/metroplan/metroplan/pkg/datastore"
	"github.com/metroplan/metroplan/pkg/planner"
)

func NetworkRouter(router fiber.Router) {
	router.Post("/rebuild", postRebuild)
	router.Get("/status", getNetworkStatus)
}

// Admin rebuild trigger, invoked after any topology or fare-rule change. A
// failed rebuild leaves the previous snapshot serving.
func postRebuild(c *fiber.Ctx) error {
	if err := datastore.RebuildEngine(c.Context()); err != nil {
		return sendEngineError(c, err)
	}

	snapshot := planner.GlobalEngine.Snapshot()

	return c.JSON(fiber.Map{
		"status":   "rebuilt",
		"built_at": snapshot.BuiltAt,
		"stations": len(snapshot.Stations),
		"lines":    len(snapshot.Lines),
		"edges":    snapshot.EdgeCount(),
	})
}

func getNetworkStatus(c *fiber.Ctx) error {
	snapshot := planner.GlobalEngine.Snapshot()
	if snapshot == nil {
		return sendEngineError(c, planner.NotReadyError)
	}

	fareTable := planner.GlobalEngine.FareTable()

	return c.JSON(fiber.Map{
		"built_at":        snapshot.BuiltAt,
		"stations":        len(snapshot.Stations),
		"lines":           len(snapshot.Lines),
		"edges":           snapshot.EdgeCount(),
		"fares_built_at":  fareTable.BuiltAt,
		"passenger_types": len(fareTable.PassengerTypes()),
	})
}
