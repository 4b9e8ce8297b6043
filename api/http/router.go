package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mshaffan/inventory-api/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. authMW gates every
// route that needs a verified identity; nothing behind it runs without one.
func Register(
	app *fiber.App,
	user *handlers.UserHandler,
	auth *handlers.AuthHandler,
	inv *handlers.InventoryHandler,
	health *handlers.HealthHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")

	// Health and readiness endpoints for probes/monitoring
	api.Get("/health", health.Health)
	api.Get("/ready", health.Ready)

	api.Post("/user", user.Register)

	api.Post("/auth", auth.Login)
	api.Get("/auth", authMW, auth.Me)

	inventory := api.Group("/inventory", authMW)
	inventory.Get("/", inv.List)
	inventory.Post("/", inv.Create)
	inventory.Put("/:id", inv.Update)
	inventory.Delete("/:id", inv.Delete)
}
