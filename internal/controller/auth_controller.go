package controller

import (
	"strconv"

	"mindfulme-be/internal/dto"
	"mindfulme-be/internal/pkg/serverutils"
	"mindfulme-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type authController struct {
	service     service.IAuthService
	userService service.IUserService
	jwtSecret   string
}

func NewAuthController(service service.IAuthService, userService service.IUserService, jwtSecret string) IAuthController {
	return &authController{
		service:     service,
		userService: userService,
		jwtSecret:   jwtSecret,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/login", c.Login)
	h.Get("/me", serverutils.JwtMiddleware(c.jwtSecret), c.Me)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, err := strconv.ParseInt(userIdStr, 10, 64)
	if err != nil {
		return serverutils.Unauthorized("Invalid claims")
	}

	res, err := c.userService.GetById(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
