package controller

import (
	"github.com/gofiber/fiber/v2"

	"fitbite-be/internal/pkg/serverutils"
	"fitbite-be/internal/service"
)

type IPurchaseController interface {
	RegisterRoutes(r fiber.Router)
	GetPurchases(ctx *fiber.Ctx) error
	GetPurchase(ctx *fiber.Ctx) error
	DownloadReceipt(ctx *fiber.Ctx) error
	CancelPurchase(ctx *fiber.Ctx) error
}

type purchaseController struct {
	service service.IPurchaseService
}

func NewPurchaseController(service service.IPurchaseService) IPurchaseController {
	return &purchaseController{service: service}
}

func (c *purchaseController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/purchases", serverutils.JwtMiddleware)
	h.Get("/", c.GetPurchases)
	h.Get("/:purchaseId/receipt", c.DownloadReceipt)
	h.Post("/:purchaseId/cancel", c.CancelPurchase)
	h.Get("/:purchaseId", c.GetPurchase)
}

func (c *purchaseController) GetPurchases(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetPurchases(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Purchases fetched", res))
}

func (c *purchaseController) GetPurchase(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	purchaseId, err := parseUUIDParam(ctx, "purchaseId")
	if err != nil {
		return err
	}

	res, err := c.service.GetPurchase(ctx.Context(), userId, purchaseId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Purchase fetched", res))
}

func (c *purchaseController) DownloadReceipt(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	purchaseId, err := parseUUIDParam(ctx, "purchaseId")
	if err != nil {
		return err
	}

	path, filename, err := c.service.GetReceiptFile(ctx.Context(), userId, purchaseId)
	if err != nil {
		return err
	}
	return ctx.Download(path, filename)
}

func (c *purchaseController) CancelPurchase(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	purchaseId, err := parseUUIDParam(ctx, "purchaseId")
	if err != nil {
		return err
	}

	res, err := c.service.CancelPurchase(ctx.Context(), userId, purchaseId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Purchase canceled", res))
}
