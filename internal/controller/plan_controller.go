package controller

import (
	"github.com/gofiber/fiber/v2"

	"fitbite-be/internal/dto"
	"fitbite-be/internal/pkg/serverutils"
	"fitbite-be/internal/service"
)

type IPlanController interface {
	RegisterRoutes(r fiber.Router)
	GetPlans(ctx *fiber.Ctx) error
	GetRecommendedPlan(ctx *fiber.Ctx) error
	GetPlan(ctx *fiber.Ctx) error
	CreateCustomPlan(ctx *fiber.Ctx) error
	SelectPlan(ctx *fiber.Ctx) error
	Checkout(ctx *fiber.Ctx) error
}

type planController struct {
	planService     service.IPlanService
	checkoutService service.ICheckoutService
}

func NewPlanController(planService service.IPlanService, checkoutService service.ICheckoutService) IPlanController {
	return &planController{
		planService:     planService,
		checkoutService: checkoutService,
	}
}

func (c *planController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/plans", serverutils.JwtMiddleware)
	h.Get("/", c.GetPlans)
	h.Get("/recommended", c.GetRecommendedPlan)
	h.Post("/custom", c.CreateCustomPlan)
	h.Post("/:planId/select", c.SelectPlan)
	h.Post("/:planId/checkout", c.Checkout)
	h.Get("/:planId", c.GetPlan)
}

func (c *planController) GetPlans(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.planService.GetPlans(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plans fetched", res))
}

func (c *planController) GetRecommendedPlan(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.planService.GetRecommendedPlan(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Recommended plan fetched", res))
}

func (c *planController) GetPlan(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	planId, err := parseUUIDParam(ctx, "planId")
	if err != nil {
		return err
	}

	res, err := c.planService.GetPlan(ctx.Context(), userId, planId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plan fetched", res))
}

func (c *planController) CreateCustomPlan(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.CustomPlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.planService.CreateCustomPlan(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Custom plan created", res))
}

func (c *planController) SelectPlan(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	planId, err := parseUUIDParam(ctx, "planId")
	if err != nil {
		return err
	}

	res, err := c.planService.SelectPlan(ctx.Context(), userId, planId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plan selected", res))
}

func (c *planController) Checkout(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	planId, err := parseUUIDParam(ctx, "planId")
	if err != nil {
		return err
	}

	var req dto.CheckoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.checkoutService.Checkout(ctx.Context(), userId, planId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Checkout completed", res))
}
