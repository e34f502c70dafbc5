package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"workflow-data-be/internal/bootstrap"
	"workflow-data-be/internal/config"
	"workflow-data-be/internal/model"
	"workflow-data-be/internal/server"
	"workflow-data-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Chat{},
		&model.Session{},
		&model.Message{},
		&model.Workflow{},
		&model.Agent{},
		&model.APIKey{},
	); err != nil {
		log.Panicf("Unable to migrate schema: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Retention Sweep
	if err := container.SweepScheduler.Start(); err != nil {
		log.Panicf("Unable to start sweep scheduler: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server with graceful shutdown
	go func() {
		if err := srv.Run(); err != nil {
			log.Panicf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("server", "shutting down", nil)
	container.SweepScheduler.Stop()
	if err := srv.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	if err := database.Close(gormDB); err != nil {
		log.Printf("DB close error: %v", err)
	}
	_ = container.Logger.Sync()
}
