package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/metroplan/metroplan/pkg/fares"
	"github.com/metroplan/metroplan/pkg/network"
	"github.com/metroplan/metroplan/pkg/planner"
	"github.com/metroplan/metroplan/pkg/routing"
)

// engineErrorStatus maps the engine error taxonomy onto transport codes.
// The engine never retries or substitutes, so every kind surfaces here.
func engineErrorStatus(err error) int {
	var stationNotFound *planner.StationNotFoundError
	var invalidPassengerType *fares.InvalidPassengerTypeError
	var fareRuleMissing *fares.FareRuleMissingError
	var budgetExceeded *routing.SearchBudgetExceededError
	var networkIntegrity *network.IntegrityError
	var fareIntegrity *fares.IntegrityError

	switch {
	case errors.As(err, &stationNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, routing.NoPathError):
		return fiber.StatusNotFound
	case errors.As(err, &invalidPassengerType):
		return fiber.StatusBadRequest
	case errors.As(err, &fareRuleMissing):
		return fiber.StatusUnprocessableEntity
	case errors.As(err, &networkIntegrity), errors.As(err, &fareIntegrity):
		return fiber.StatusUnprocessableEntity
	case errors.As(err, &budgetExceeded), errors.Is(err, planner.NotReadyError):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusBadRequest
	}
}

func sendEngineError(c *fiber.Ctx, err error) error {
	c.SendStatus(engineErrorStatus(err))
	return c.JSON(fiber.Map{
		"error": err.Error(),
	})
}
