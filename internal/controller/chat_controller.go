package controller

import (
	"github.com/gofiber/fiber/v2"

	"workflow-data-be/internal/dto"
	"workflow-data-be/internal/pkg/serverutils"
	"workflow-data-be/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{chatService: chatService}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chats")
	h.Post("/", c.Create)
	h.Get("/", c.Index)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
}

func (c *chatController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Create(ctx.Context(), principalFrom(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create chat", res))
}

func (c *chatController) Show(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.chatService.Get(ctx.Context(), principalFrom(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show chat", res))
}

func (c *chatController) Index(ctx *fiber.Ctx) error {
	var query dto.ListChatsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	res, err := c.chatService.List(ctx.Context(), principalFrom(ctx), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list chats", res))
}

func (c *chatController) Update(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Update(ctx.Context(), principalFrom(ctx), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update chat", res))
}
