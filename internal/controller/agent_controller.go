package controller

import (
	"github.com/gofiber/fiber/v2"

	"workflow-data-be/internal/dto"
	"workflow-data-be/internal/pkg/serverutils"
	"workflow-data-be/internal/service"
)

type IAgentController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Register(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type agentController struct {
	agentService service.IAgentService
}

func NewAgentController(agentService service.IAgentService) IAgentController {
	return &agentController{agentService: agentService}
}

func (c *agentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/agents")
	h.Post("/", c.Create)
	h.Post("/register", c.Register)
	h.Get("/", c.Index)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
}

func (c *agentController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateAgentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.agentService.Create(ctx.Context(), principalFrom(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create agent", res))
}

func (c *agentController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterAgentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.agentService.Register(ctx.Context(), principalFrom(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success register agent", res))
}

func (c *agentController) Show(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.agentService.Get(ctx.Context(), principalFrom(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show agent", res))
}

func (c *agentController) Index(ctx *fiber.Ctx) error {
	var query dto.ListAgentsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	res, err := c.agentService.List(ctx.Context(), principalFrom(ctx), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list agents", res))
}

func (c *agentController) Update(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateAgentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.agentService.Update(ctx.Context(), principalFrom(ctx), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update agent", res))
}
