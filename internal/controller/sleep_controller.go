package controller

import (
	"mindfulme-be/internal/dto"
	"mindfulme-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISleepController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	ListByUser(ctx *fiber.Ctx) error
}

type sleepController struct {
	service service.ISleepService
}

func NewSleepController(service service.ISleepService) ISleepController {
	return &sleepController{service: service}
}

func (c *sleepController) RegisterRoutes(r fiber.Router) {
	r.Post("/sleep", c.Create)
	r.Get("/users/:userId/sleep", c.ListByUser)
}

func (c *sleepController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSleepRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *sleepController) ListByUser(ctx *fiber.Ctx) error {
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
