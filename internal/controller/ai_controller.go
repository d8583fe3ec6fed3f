package controller

import (
	"welllog-ai-be/internal/dto"
	"welllog-ai-be/internal/pkg/apperrors"
	"welllog-ai-be/internal/pkg/serverutils"
	"welllog-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAiController interface {
	RegisterRoutes(r fiber.Router)
	Interpret(ctx *fiber.Ctx) error
	ShowInterpretations(ctx *fiber.Ctx) error
	Chat(ctx *fiber.Ctx) error
}

type aiController struct {
	interpretationService service.IInterpretationService
	chatService           service.IChatService
}

func NewAiController(
	interpretationService service.IInterpretationService,
	chatService service.IChatService,
) IAiController {
	return &aiController{
		interpretationService: interpretationService,
		chatService:           chatService,
	}
}

func (c *aiController) RegisterRoutes(r fiber.Router) {
	r.Post("/interpret", c.Interpret)
	r.Get("/interpretations/:id", c.ShowInterpretations)
	r.Post("/chat", c.Chat)
}

func (c *aiController) Interpret(ctx *fiber.Ctx) error {
	var req dto.InterpretRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.Validationf("malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.interpretationService.Interpret(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *aiController) ShowInterpretations(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.interpretationService.ListInterpretations(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *aiController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.Validationf("malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Chat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
