package controller

import (
	"fmt"

	"sql-workbench-be/internal/dto"
	"sql-workbench-be/internal/pkg/serverutils"
	"sql-workbench-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IQueryController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	Execute(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	ToggleFavorite(ctx *fiber.Ctx) error
	RenameFavorite(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Download(ctx *fiber.Ctx) error
}

type queryController struct {
	service service.IQueryService
}

func NewQueryController(service service.IQueryService) IQueryController {
	return &queryController{service: service}
}

func (c *queryController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/queries/v1")
	h.Use(authMiddleware)
	h.Post("/execute", c.Execute)
	h.Get("/history", c.History)
	h.Put(":id/favorite", c.ToggleFavorite)
	h.Put(":id/favorite/name", c.RenameFavorite)
	h.Delete(":id", c.Delete)
	h.Get(":id/download", c.Download)
}

func (c *queryController) Execute(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.ExecuteQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.Execute(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *queryController) History(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.History(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *queryController) ToggleFavorite(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.service.ToggleFavorite(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *queryController) RenameFavorite(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.RenameFavoriteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.RenameFavorite(ctx.Context(), userId, id, &req); err != nil {
		return err
	}

	return ctx.JSON(dto.MessageResponse{Message: "Favorite renamed successfully"})
}

func (c *queryController) Delete(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.service.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(dto.MessageResponse{Message: "Query deleted successfully"})
}

func (c *queryController) Download(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.service.Download(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "text/csv")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, res.Filename))
	return ctx.Send(res.Content)
}
