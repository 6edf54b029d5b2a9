package routes

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/metroplan/metroplan/pkg/dataaggregator"
	"github.com/metroplan/metroplan/pkg/dataaggregator/query"
	"github.com/metroplan/metroplan/pkg/dataaggregator/source/cachedresults"
	"github.com/metroplan/metroplan/pkg/mndf"
	"github.com/metroplan/metroplan/pkg/network"
	"github.com/rs/zerolog/log"
)

// PlanCache is set when Redis is available. Plans are deterministic per
// snapshot so cache hits are byte-identical to recomputation.
var PlanCache *cachedresults.Cache

func PlannerRouter(router fiber.Router) {
	router.Get("/:origin/:destination", getPlanBetweenStations)
}

func getPlanBetweenStations(c *fiber.Ctx) error {
	originIdentifier := c.Params("origin")
	destinationIdentifier := c.Params("destination")

	count, err := strconv.Atoi(c.Query("count", "3"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter count should be an integer",
		})
	}

	groupSize, err := strconv.Atoi(c.Query("group_size", "0"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter group_size should be an integer",
		})
	}

	preference := mndf.Preference(c.Query("preference", string(mndf.PreferenceFastest)))

	var passengerTypes []string
	if passengers := c.Query("passengers"); passengers != "" {
		passengerTypes = strings.Split(passengers, ",")
	}

	overlay, err := parseOverlay(c)
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Only uncustomised requests are worth caching
	cacheKey := ""
	if PlanCache != nil && overlay.Empty() {
		cacheKey = c.OriginalURL()

		if cached, err := PlanCache.Cache.Get(context.Background(), cacheKey); err == nil && cached != "" {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.SendString(cached)
		}
	}

	planResults, err := dataaggregator.Lookup[[]mndf.PricedItinerary](query.JourneyPlan{
		Origin:         originIdentifier,
		Destination:    destinationIdentifier,
		Preference:     preference,
		PassengerTypes: passengerTypes,
		Group:          groupSize > 1,
		GroupSize:      groupSize,
		Count:          count,
		Overlay:        overlay,
	})
	if err != nil {
		return sendEngineError(c, err)
	}

	if cacheKey != "" {
		if encoded, err := json.Marshal(planResults); err == nil {
			if err := PlanCache.Cache.Set(context.Background(), cacheKey, string(encoded)); err != nil {
				log.Debug().Err(err).Msg("Failed to cache plan results")
			}
		}
	}

	return c.JSON(planResults)
}

// parseOverlay reads the optional per-request service status: closed edge
// keys and edge delays supplied by the realtime collaborator.
func parseOverlay(c *fiber.Ctx) (network.Overlay, error) {
	overlay := network.Overlay{}

	if closed := c.Query("closed"); closed != "" {
		overlay.ClosedEdges = map[string]bool{}
		for _, edgeKey := range strings.Split(closed, ",") {
			overlay.ClosedEdges[edgeKey] = true
		}
	}

	if delays := c.Query("delays"); delays != "" {
		overlay.DelayMinutes = map[string]int{}
		for _, pair := range strings.Split(delays, ",") {
			edgeKey, minutesString, found := strings.Cut(pair, "=")
			if !found {
				return overlay, fiber.NewError(fiber.StatusBadRequest, "Parameter delays should be edgeKey=minutes pairs")
			}

			minutes, err := strconv.Atoi(minutesString)
			if err != nil {
				return overlay, err
			}

			overlay.DelayMinutes[edgeKey] = minutes
		}
	}

	return overlay, nil
}
