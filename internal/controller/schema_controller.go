package controller

import (
	"sql-workbench-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISchemaController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	ListTables(ctx *fiber.Ctx) error
	GetTableSchema(ctx *fiber.Ctx) error
}

type schemaController struct {
	service service.ISchemaService
}

func NewSchemaController(service service.ISchemaService) ISchemaController {
	return &schemaController{service: service}
}

func (c *schemaController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/schema/v1")
	h.Use(authMiddleware)
	h.Get("/tables", c.ListTables)
	h.Get("/tables/:name", c.GetTableSchema)
}

func (c *schemaController) ListTables(ctx *fiber.Ctx) error {
	res, err := c.service.ListTables(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *schemaController) GetTableSchema(ctx *fiber.Ctx) error {
	res, err := c.service.GetTableSchema(ctx.Context(), ctx.Params("name"))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
