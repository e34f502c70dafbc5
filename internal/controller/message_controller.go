package controller

import (
	"github.com/gofiber/fiber/v2"

	"workflow-data-be/internal/dto"
	"workflow-data-be/internal/pkg/serverutils"
	"workflow-data-be/internal/service"
)

type IMessageController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
}

type messageController struct {
	messageService service.IMessageService
}

func NewMessageController(messageService service.IMessageService) IMessageController {
	return &messageController{messageService: messageService}
}

func (c *messageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/messages")
	h.Post("/", c.Create)
	h.Get("/", c.Index)
	h.Get("/:id", c.Show)
}

func (c *messageController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.messageService.Create(ctx.Context(), principalFrom(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create message", res))
}

func (c *messageController) Show(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.messageService.Get(ctx.Context(), principalFrom(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show message", res))
}

func (c *messageController) Index(ctx *fiber.Ctx) error {
	var query dto.ListMessagesQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	res, err := c.messageService.List(ctx.Context(), principalFrom(ctx), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list messages", res))
}
