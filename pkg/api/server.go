package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/metroplan/metroplan/pkg/api/routes"
)

func SetupServer(listen string) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.StationsRouter(group.Group("/stations"))

	routes.PlannerRouter(group.Group("/planner"))

	routes.FaresRouter(group.Group("/fares"))

	routes.NetworkRouter(group.Group("/network"))

	return webApp.Listen(listen)
}
