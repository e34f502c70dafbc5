package controller

import (
	"github.com/gofiber/fiber/v2"

	"workflow-data-be/internal/dto"
	"workflow-data-be/internal/pkg/apperror"
	"workflow-data-be/internal/pkg/serverutils"
	"workflow-data-be/internal/service"
)

type IMaintenanceController interface {
	RegisterRoutes(r fiber.Router)
	Cleanup(ctx *fiber.Ctx) error
}

type maintenanceController struct {
	retentionService  service.IRetentionService
	defaultCutoffDays int
}

func NewMaintenanceController(retentionService service.IRetentionService, defaultCutoffDays int) IMaintenanceController {
	return &maintenanceController{
		retentionService:  retentionService,
		defaultCutoffDays: defaultCutoffDays,
	}
}

func (c *maintenanceController) RegisterRoutes(r fiber.Router) {
	r.Post("/cleanup", c.Cleanup)
}

func (c *maintenanceController) Cleanup(ctx *fiber.Ctx) error {
	if !principalFrom(ctx).Admin {
		return apperror.NewDenied()
	}

	var req dto.CleanupRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return err
		}
	}

	cutoffDays := c.defaultCutoffDays
	if req.CutoffDays != nil {
		cutoffDays = *req.CutoffDays
	}

	res, err := c.retentionService.Sweep(ctx.Context(), cutoffDays)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success run cleanup", res))
}
