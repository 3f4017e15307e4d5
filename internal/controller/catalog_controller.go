package controller

import (
	"mindfulme-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMeditationController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type meditationController struct {
	service service.IMeditationService
}

func NewMeditationController(service service.IMeditationService) IMeditationController {
	return &meditationController{service: service}
}

func (c *meditationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/meditations")
	h.Get("", c.GetAll)
	h.Get("/:id", c.Show)
}

func (c *meditationController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *meditationController) Show(ctx *fiber.Ctx) error {
	id, err := parseId(ctx, "id", "meditation")
	if err != nil {
		return err
	}

	res, err := c.service.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

type ICalmingSoundController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type calmingSoundController struct {
	service service.ICalmingSoundService
}

func NewCalmingSoundController(service service.ICalmingSoundService) ICalmingSoundController {
	return &calmingSoundController{service: service}
}

func (c *calmingSoundController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/calming-sounds")
	h.Get("", c.GetAll)
	h.Get("/:id", c.Show)
}

func (c *calmingSoundController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *calmingSoundController) Show(ctx *fiber.Ctx) error {
	id, err := parseId(ctx, "id", "sound")
	if err != nil {
		return err
	}

	res, err := c.service.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
