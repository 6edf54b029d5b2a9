package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/metroplan/metroplan/pkg/dataaggregator"
	"github.com/metroplan/metroplan/pkg/dataaggregator/query"
	"github.com/metroplan/metroplan/pkg/mndf"
	"github.com/metroplan/metroplan/pkg/util"
)

func StationsRouter(router fiber.Router) {
	router.Get("/", listStations)
	router.Get("/:identifier", getStation)
}

func listStations(c *fiber.Ctx) error {
	stations, err := dataaggregator.Lookup[[]mndf.Station](query.StationList{
		LineRef: c.Query("line"),
	})
	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if c.Query("interchange") == "true" {
		util.InPlaceFilter(&stations, func(station mndf.Station) bool {
			return station.Interchange
		})
	}

	groups := []string{"basic"}
	if c.Query("detailed") == "true" {
		groups = append(groups, "detailed")
	}

	stationsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, stations)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sorry could not parse stations",
		})
	}

	return c.JSON(stationsReduced)
}

func getStation(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	station, err := dataaggregator.Lookup[*mndf.Station](query.Station{
		PrimaryIdentifier: identifier,
	})
	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Station matching Station Identifier",
		})
	}

	return c.JSON(station)
}
