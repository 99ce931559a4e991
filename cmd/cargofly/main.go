package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cargofly/config"
	"cargofly/internal/delivery"
	"cargofly/internal/delivery/http"
	"cargofly/internal/delivery/http/middleware"
	"cargofly/internal/delivery/http/router/handler"
	"cargofly/internal/domain/service"
	"cargofly/internal/infra/assistant"
	"cargofly/internal/infra/auth"
	logs "cargofly/internal/infra/log"
	"cargofly/internal/infra/persistence/postgres"
	"cargofly/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			migrate,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		// Expose the shipping rate card for the pricing service
		func(cfg *config.Config) *config.ShippingConfig {
			if cfg == nil || cfg.Shipping == nil {
				return &config.ShippingConfig{}
			}

			return cfg.Shipping
		},
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewShipmentRepository,
			postgres.NewTrackingEventRepository,
			postgres.NewWalletRepository,
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newTokenVerifier,
			newAssistantService,
		),
	)
}

// newTokenVerifier creates the Firebase ID-token verifier with dependency injection
func newTokenVerifier(ctx context.Context, cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.Firebase == nil {
		return nil, fmt.Errorf("firebase configuration is required")
	}

	verifier, err := auth.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase verifier: %w", err)
	}

	return verifier, nil
}

// newAssistantService creates the Gemini-backed assistant with dependency injection
func newAssistantService(ctx context.Context, cfg *config.Config) (service.AssistantService, error) {
	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required")
	}

	svc, err := assistant.NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini service: %w", err)
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewShipmentService,
			impl.NewWalletService,
			impl.NewProfileService,
			impl.NewPricingService,
			impl.NewAssistantService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewShipmentHandler,
			handler.NewWalletHandler,
			handler.NewProfileHandler,
			handler.NewQuoteHandler,
			handler.NewAssistantHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func migrate(db *gorm.DB) error {
	return postgres.AutoMigrate(db)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
