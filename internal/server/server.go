package server

import (
	"workflow-data-be/internal/bootstrap"
	"workflow-data-be/internal/config"
	"workflow-data-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.App.CorsAllowedOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, X-API-Key",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Content-Type",
	}))
	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info("server", "listening", map[string]interface{}{
		"host": s.cfg.App.Host,
		"port": s.cfg.App.Port,
	})
	return s.app.Listen(s.cfg.App.Host + ":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	// service info and health stay unauthenticated
	c.MetaController.RegisterRoutes(app)

	api := app.Group("/", c.APIKeyMiddleware.Authenticate())

	c.UserController.RegisterRoutes(api)
	c.ChatController.RegisterRoutes(api)
	c.SessionController.RegisterRoutes(api)
	c.MessageController.RegisterRoutes(api)
	c.WorkflowController.RegisterRoutes(api)
	c.AgentController.RegisterRoutes(api)
	c.APIKeyController.RegisterRoutes(api)
	c.MaintenanceController.RegisterRoutes(api)
}
