package controller

import (
	"welllog-ai-be/internal/dto"
	"welllog-ai-be/internal/pkg/apperrors"
	"welllog-ai-be/internal/pkg/serverutils"
	"welllog-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IVisualizationController interface {
	RegisterRoutes(r fiber.Router)
	Visualize(ctx *fiber.Ctx) error
}

type visualizationController struct {
	visualizationService service.IVisualizationService
}

func NewVisualizationController(visualizationService service.IVisualizationService) IVisualizationController {
	return &visualizationController{
		visualizationService: visualizationService,
	}
}

func (c *visualizationController) RegisterRoutes(r fiber.Router) {
	r.Post("/visualize", c.Visualize)
}

func (c *visualizationController) Visualize(ctx *fiber.Ctx) error {
	var req dto.VisualizeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.Validationf("malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.visualizationService.BuildVisualization(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
