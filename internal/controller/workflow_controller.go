package controller

import (
	"github.com/gofiber/fiber/v2"

	"workflow-data-be/internal/dto"
	"workflow-data-be/internal/pkg/serverutils"
	"workflow-data-be/internal/service"
)

type IWorkflowController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type workflowController struct {
	workflowService service.IWorkflowService
}

func NewWorkflowController(workflowService service.IWorkflowService) IWorkflowController {
	return &workflowController{workflowService: workflowService}
}

func (c *workflowController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/workflows")
	h.Post("/", c.Create)
	h.Get("/", c.Index)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
}

func (c *workflowController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateWorkflowRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.workflowService.Create(ctx.Context(), principalFrom(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create workflow", res))
}

func (c *workflowController) Show(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.workflowService.Get(ctx.Context(), principalFrom(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show workflow", res))
}

func (c *workflowController) Index(ctx *fiber.Ctx) error {
	var query dto.ListWorkflowsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	res, err := c.workflowService.List(ctx.Context(), principalFrom(ctx), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list workflows", res))
}

func (c *workflowController) Update(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateWorkflowRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.workflowService.Update(ctx.Context(), principalFrom(ctx), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update workflow", res))
}
