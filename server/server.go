package server

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"memdex/registry"
	routes "memdex/server/routes"
)

// NewApp builds the fiber application over the given registry. Split out
// from Serve so tests can drive it with app.Test.
func NewApp(reg *registry.Registry) *fiber.App {
	app := fiber.New()
	routes.SetupRoutes(app, reg)
	return app
}

func Serve(addr string) {
	app := NewApp(registry.New())

	log.Printf("Fiber listening on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatal(err)
	}
}
