package controller

import (
	"strconv"

	"mindfulme-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// parseId reads an integer path parameter, answering 400 "Invalid {label} ID" otherwise.
func parseId(ctx *fiber.Ctx, param, label string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params(param), 10, 64)
	if err != nil {
		return 0, serverutils.BadRequest("Invalid " + label + " ID")
	}
	return id, nil
}

// parseLimit treats a missing, malformed or non-positive limit as "no limit".
func parseLimit(ctx *fiber.Ctx) int {
	limit, err := strconv.Atoi(ctx.Query("limit"))
	if err != nil || limit <= 0 {
		return 0
	}
	return limit
}

func bindBody(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	return nil
}

func bindAndValidate(ctx *fiber.Ctx, req interface{}) error {
	if err := bindBody(ctx, req); err != nil {
		return err
	}
	return serverutils.ValidateRequest(req)
}
