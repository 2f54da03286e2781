package routes

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"memdex/registry"
)

func SetupRoutes(router fiber.Router, reg *registry.Registry) {
	router.Get("/indexes", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"indexes": reg.Names()})
	})

	router.Post("/create-index", func(c *fiber.Ctx) error {
		var body struct {
			Name   string `json:"name"`
			Degree int    `json:"degree"`
		}
		if err := c.BodyParser(&body); err != nil || body.Degree < 2 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "degree>=2 required"})
		}

		ix, err := reg.Create(body.Name, body.Degree)
		if err != nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "index created", "name": ix.Name()})
	})

	router.Post("/insert", func(c *fiber.Ctx) error {
		var body struct {
			Index string `json:"index"`
			Key   string `json:"key"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
		}

		ix, err := reg.Get(body.Index)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		if err := ix.Insert(body.Key); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "inserted"})
	})

	router.Get("/search", func(c *fiber.Ctx) error {
		name, key := c.Query("index"), c.Query("key")
		if name == "" || key == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing query params"})
		}

		ix, err := reg.Get(name)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		found, err := ix.Search(key)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		if !found {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "key not found"})
		}
		return c.JSON(fiber.Map{"key": key, "found": true})
	})

	router.Get("/keys", func(c *fiber.Ctx) error {
		name := c.Query("index")
		if name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "index required"})
		}

		ix, err := reg.Get(name)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"keys": ix.Keys()})
	})

	router.Get("/stats", func(c *fiber.Ctx) error {
		name := c.Query("index")
		if name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "index required"})
		}

		ix, err := reg.Get(name)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(ix.Stats())
	})

	router.Delete("/drop", func(c *fiber.Ctx) error {
		name := c.Query("index")
		if name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "index required"})
		}

		if err := reg.Drop(name); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "dropped"})
	})

	router.Get("/export", func(c *fiber.Ctx) error {
		name := c.Query("index")
		if name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "index required"})
		}

		ix, err := reg.Get(name)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		var buf bytes.Buffer
		if err := ix.Export(&buf); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
		return c.Send(buf.Bytes())
	})

	router.Post("/import", func(c *fiber.Ctx) error {
		name := c.Query("index")
		if name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "index required"})
		}

		ix, err := reg.Get(name)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		if err := ix.Import(bytes.NewReader(c.Body())); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "imported", "keys": ix.Len()})
	})
}
