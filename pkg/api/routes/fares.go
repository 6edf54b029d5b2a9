package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/metroplan/metroplan/pkg/dataaggregator"
	"github.com/metroplan/metroplan/pkg/dataaggregator/query"
	"github.com/metroplan/metroplan/pkg/mndf"
)

func FaresRouter(router fiber.Router) {
	router.Post("/quote", postFareQuote)
}

type fareQuoteRequest struct {
	Itinerary        mndf.Itinerary `json:"itinerary"`
	PassengerTypeRef string         `json:"passenger_type"`
	GroupSize        int            `json:"group_size"`
}

// Standalone fare quote for an already-known itinerary, used by the fare
// comparison feature without running a full plan.
func postFareQuote(c *fiber.Ctx) error {
	var request fareQuoteRequest
	if err := c.BodyParser(&request); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Request body should be a fare quote",
		})
	}

	if request.PassengerTypeRef == "" {
		request.PassengerTypeRef = "adult"
	}

	breakdown, err := dataaggregator.Lookup[*mndf.FareBreakdown](query.FareQuote{
		Itinerary:        &request.Itinerary,
		PassengerTypeRef: request.PassengerTypeRef,
		Group:            request.GroupSize > 1,
		GroupSize:        request.GroupSize,
	})
	if err != nil {
		return sendEngineError(c, err)
	}

	return c.JSON(breakdown)
}
