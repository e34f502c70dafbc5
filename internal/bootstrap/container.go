package bootstrap

import (
	"gorm.io/gorm"

	"workflow-data-be/internal/config"
	"workflow-data-be/internal/controller"
	"workflow-data-be/internal/pkg/logger"
	"workflow-data-be/internal/pkg/serverutils"
	"workflow-data-be/internal/repository/unitofwork"
	"workflow-data-be/internal/scheduler"
	"workflow-data-be/internal/service"
)

type Container struct {
	// Controllers
	MetaController        controller.IMetaController
	UserController        controller.IUserController
	ChatController        controller.IChatController
	SessionController     controller.ISessionController
	MessageController     controller.IMessageController
	WorkflowController    controller.IWorkflowController
	AgentController       controller.IAgentController
	APIKeyController      controller.IAPIKeyController
	MaintenanceController controller.IMaintenanceController

	// Middleware
	APIKeyMiddleware *serverutils.APIKeyMiddleware

	// Background
	SweepScheduler *scheduler.SweepScheduler

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.LogLevel, cfg.App.Environment == "production")

	// 2. Services
	accessService := service.NewAccessService()
	apiKeyService := service.NewAPIKeyService(uowFactory, cfg, sysLogger)
	userService := service.NewUserService(uowFactory, sysLogger)
	chatService := service.NewChatService(uowFactory, accessService, sysLogger)
	sessionService := service.NewSessionService(uowFactory, accessService, sysLogger)
	messageService := service.NewMessageService(uowFactory, accessService, sysLogger)
	workflowService := service.NewWorkflowService(uowFactory, accessService, sysLogger)
	agentService := service.NewAgentService(uowFactory, accessService, sysLogger)
	retentionService := service.NewRetentionService(uowFactory, sysLogger)

	// 3. Background sweep
	sweepScheduler := scheduler.NewSweepScheduler(
		retentionService,
		cfg.Retention.SweepSchedule,
		cfg.Retention.CutoffDays,
		sysLogger,
	)

	return &Container{
		MetaController:        controller.NewMetaController(db),
		UserController:        controller.NewUserController(userService),
		ChatController:        controller.NewChatController(chatService),
		SessionController:     controller.NewSessionController(sessionService),
		MessageController:     controller.NewMessageController(messageService),
		WorkflowController:    controller.NewWorkflowController(workflowService),
		AgentController:       controller.NewAgentController(agentService),
		APIKeyController:      controller.NewAPIKeyController(apiKeyService),
		MaintenanceController: controller.NewMaintenanceController(retentionService, cfg.Retention.CutoffDays),

		APIKeyMiddleware: serverutils.NewAPIKeyMiddleware(apiKeyService, cfg.Auth.RateLimitPerMin),
		SweepScheduler:   sweepScheduler,
		Logger:           sysLogger,
	}
}
