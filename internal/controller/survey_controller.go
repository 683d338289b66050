package controller

import (
	"github.com/gofiber/fiber/v2"

	"fitbite-be/internal/dto"
	"fitbite-be/internal/pkg/serverutils"
	"fitbite-be/internal/service"
)

type ISurveyController interface {
	RegisterRoutes(r fiber.Router)
	GetSurveys(ctx *fiber.Ctx) error
	GetSurvey(ctx *fiber.Ctx) error
	SubmitResponse(ctx *fiber.Ctx) error
}

type surveyController struct {
	service service.ISurveyService
}

func NewSurveyController(service service.ISurveyService) ISurveyController {
	return &surveyController{service: service}
}

func (c *surveyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/surveys", serverutils.JwtMiddleware)
	h.Get("/", c.GetSurveys)
	h.Get("/:surveyId", c.GetSurvey)
	h.Post("/:surveyId/responses", c.SubmitResponse)
}

func (c *surveyController) GetSurveys(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetSurveys(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Surveys fetched", res))
}

func (c *surveyController) GetSurvey(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	surveyId, err := parseUUIDParam(ctx, "surveyId")
	if err != nil {
		return err
	}

	res, err := c.service.GetSurvey(ctx.Context(), userId, surveyId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Survey fetched", res))
}

func (c *surveyController) SubmitResponse(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	surveyId, err := parseUUIDParam(ctx, "surveyId")
	if err != nil {
		return err
	}

	var req dto.SurveySubmitRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SubmitResponse(ctx.Context(), userId, surveyId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Survey submitted", res))
}
