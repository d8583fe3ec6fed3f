package controller

import (
	"io"

	"welllog-ai-be/internal/pkg/apperrors"
	"welllog-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFileController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ShowCurves(ctx *fiber.Ctx) error
	ShowDepthRange(ctx *fiber.Ctx) error
}

type fileController struct {
	fileService service.IFileService
}

func NewFileController(fileService service.IFileService) IFileController {
	return &fileController{
		fileService: fileService,
	}
}

func (c *fileController) RegisterRoutes(r fiber.Router) {
	r.Post("/upload", c.Upload)
	r.Get("/files", c.List)
	r.Get("/file/:id", c.Show)
	r.Delete("/file/:id", c.Delete)
	r.Get("/curves/:id", c.ShowCurves)
	r.Get("/depth-range/:id", c.ShowDepthRange)
}

func (c *fileController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return apperrors.Validationf("no file provided")
	}
	if fileHeader.Filename == "" {
		return apperrors.Validationf("no file selected")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return apperrors.Storage("failed to open uploaded file", err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return apperrors.Storage("failed to read uploaded file", err)
	}

	res, err := c.fileService.Upload(ctx.Context(), fileHeader.Filename, raw)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *fileController) List(ctx *fiber.Ctx) error {
	res, err := c.fileService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *fileController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.fileService.Get(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *fileController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.fileService.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *fileController) ShowCurves(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.fileService.ListCurves(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *fileController) ShowDepthRange(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.fileService.DepthRange(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func parseIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperrors.Validationf("invalid file id %q", ctx.Params("id"))
	}
	return id, nil
}
