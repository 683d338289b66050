package controller

import (
	"github.com/gofiber/fiber/v2"

	"fitbite-be/internal/pkg/serverutils"
	"fitbite-be/internal/service"
)

type IDiscountController interface {
	RegisterRoutes(r fiber.Router)
	GetCodes(ctx *fiber.Ctx) error
}

type discountController struct {
	service service.IDiscountService
}

func NewDiscountController(service service.IDiscountService) IDiscountController {
	return &discountController{service: service}
}

func (c *discountController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/discounts", serverutils.JwtMiddleware)
	h.Get("/codes", c.GetCodes)
}

func (c *discountController) GetCodes(ctx *fiber.Ctx) error {
	res, err := c.service.GetCodes(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Discount codes fetched", res))
}
