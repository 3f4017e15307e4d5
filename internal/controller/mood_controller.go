package controller

import (
	"mindfulme-be/internal/dto"
	"mindfulme-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMoodController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	ListByUser(ctx *fiber.Ctx) error
}

type moodController struct {
	service service.IMoodService
}

func NewMoodController(service service.IMoodService) IMoodController {
	return &moodController{service: service}
}

func (c *moodController) RegisterRoutes(r fiber.Router) {
	r.Post("/moods", c.Create)
	r.Get("/users/:userId/moods", c.ListByUser)
}

func (c *moodController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateMoodRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *moodController) ListByUser(ctx *fiber.Ctx) error {
	userId, err := parseId(ctx, "userId", "user")
	if err != nil {
		return err
	}

	res, err := c.service.ListByUser(ctx.Context(), userId, parseLimit(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
