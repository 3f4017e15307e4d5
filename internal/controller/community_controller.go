package controller

import (
	"mindfulme-be/internal/dto"
	"mindfulme-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICommunityController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Like(ctx *fiber.Ctx) error
}

type communityController struct {
	service service.ICommunityService
}

func NewCommunityController(service service.ICommunityService) ICommunityController {
	return &communityController{service: service}
}

func (c *communityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/community/posts")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Post("/:id/like", c.Like)
}

func (c *communityController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context(), parseLimit(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *communityController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCommunityPostRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *communityController) Like(ctx *fiber.Ctx) error {
	id, err := parseId(ctx, "id", "post")
	if err != nil {
		return err
	}

	res, err := c.service.Like(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
