package controller

import (
	"mindfulme-be/internal/dto"
	"mindfulme-be/internal/pkg/serverutils"
	"mindfulme-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	GetHistory(ctx *fiber.Ctx) error
	SaveHistory(ctx *fiber.Ctx) error
	AiChat(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Get("/users/:userId/chat-history", c.GetHistory)
	r.Post("/users/:userId/chat-history", c.SaveHistory)
	r.Post("/ai-chat", c.AiChat)
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	userId, err := parseId(ctx, "userId", "user")
	if err != nil {
		return err
	}

	res, err := c.service.GetHistory(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) SaveHistory(ctx *fiber.Ctx) error {
	userId, err := parseId(ctx, "userId", "user")
	if err != nil {
		return err
	}

	var req dto.SaveChatHistoryRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}
	req.UserId = userId

	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.SaveHistory(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

// AiChat validates inside the service so the 400 message stays fixed.
func (c *chatController) AiChat(ctx *fiber.Ctx) error {
	var req dto.AiChatRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.AiChat(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
