package controller

import (
	"github.com/gofiber/fiber/v2"

	"workflow-data-be/internal/dto"
	"workflow-data-be/internal/pkg/serverutils"
	"workflow-data-be/internal/service"
)

type IAPIKeyController interface {
	RegisterRoutes(r fiber.Router)
	Issue(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Revoke(ctx *fiber.Ctx) error
}

type apiKeyController struct {
	apiKeyService service.IAPIKeyService
}

func NewAPIKeyController(apiKeyService service.IAPIKeyService) IAPIKeyController {
	return &apiKeyController{apiKeyService: apiKeyService}
}

func (c *apiKeyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/keys")
	h.Post("/", c.Issue)
	h.Get("/", c.Index)
	h.Delete("/:id", c.Revoke)
}

func (c *apiKeyController) Issue(ctx *fiber.Ctx) error {
	var req dto.IssueAPIKeyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.apiKeyService.Issue(ctx.Context(), principalFrom(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success issue api key", res))
}

func (c *apiKeyController) Index(ctx *fiber.Ctx) error {
	res, err := c.apiKeyService.List(ctx.Context(), principalFrom(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list api keys", res))
}

func (c *apiKeyController) Revoke(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	if err := c.apiKeyService.Revoke(ctx.Context(), principalFrom(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success revoke api key", nil))
}
