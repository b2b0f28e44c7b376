package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/helpdesk-service/internal/api/http"
	"github.com/spec-kit/helpdesk-service/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/observability"
	"github.com/spec-kit/helpdesk-service/internal/persistence"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/internal/service"
	"github.com/spec-kit/helpdesk-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mongo, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("failed to connect mongo", zap.Error(err))
	}
	defer mongo.Close()

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	ticketRepo := repository.NewTicketRepository(mongo.Collection(persistence.CollectionTickets))
	adminRepo := repository.NewAdminRepository(mongo.Collection(persistence.CollectionAdmins))
	memberRepo := repository.NewMemberRepository(mongo.Collection(persistence.CollectionMembers))
	userRepo := repository.NewUserRepository(mongo.Collection(persistence.CollectionUsers))
	messageRepo := repository.NewMessageRepository(mongo.Collection(persistence.CollectionMessages))

	dispatcher := events.NewInMemoryDispatcher()

	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo: ticketRepo,
		MemberRepo: memberRepo,
		Dispatcher: dispatcher,
	})
	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		AdminRepo:  adminRepo,
		MemberRepo: memberRepo,
		UserRepo:   userRepo,
	})
	memberService := service.NewMemberService(memberRepo)
	userService := service.NewUserService(userRepo)
	messageService := service.NewMessageService(messageRepo)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, mongo, redis, metrics),
		Tickets:  handlers.NewTicketsHandler(ticketService),
		Members:  handlers.NewMembersHandler(memberService),
		Auth:     handlers.NewAuthHandler(authService, cfg.App.IsProduction()),
		Users:    handlers.NewUsersHandler(userService),
		Messages: handlers.NewMessagesHandler(messageService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
