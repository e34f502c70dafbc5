package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"workflow-data-be/internal/dto"
)

const serviceVersion = "1.0.0"

// IMetaController serves the unauthenticated service info and health
// endpoints.
type IMetaController interface {
	RegisterRoutes(r fiber.Router)
	Info(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type metaController struct {
	db *gorm.DB
}

func NewMetaController(db *gorm.DB) IMetaController {
	return &metaController{db: db}
}

func (c *metaController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Info)
	r.Get("/health", c.Health)
}

func (c *metaController) Info(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.ServiceInfoResponse{
		Name:    "Workflow Automation Data Server",
		Version: serviceVersion,
		Status:  "running",
		Endpoints: map[string]string{
			"users":     "/users/",
			"chats":     "/chats/",
			"sessions":  "/sessions/",
			"messages":  "/messages/",
			"workflows": "/workflows/",
			"agents":    "/agents/",
			"keys":      "/keys/",
			"cleanup":   "/cleanup/",
		},
		Timestamp: time.Now().UTC(),
	})
}

func (c *metaController) Health(ctx *fiber.Ctx) error {
	dbStatus := "connected"
	status := "healthy"

	sqlDB, err := c.db.DB()
	if err != nil || sqlDB.PingContext(ctx.Context()) != nil {
		dbStatus = "disconnected"
		status = "degraded"
	}

	code := fiber.StatusOK
	if status != "healthy" {
		code = fiber.StatusServiceUnavailable
	}
	return ctx.Status(code).JSON(dto.HealthResponse{
		Status:    status,
		Database:  dbStatus,
		Timestamp: time.Now().UTC(),
	})
}
