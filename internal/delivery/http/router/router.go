// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cargofly/internal/delivery/http/middleware"
	"cargofly/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ShipmentHandler  *handler.ShipmentHandler
	WalletHandler    *handler.WalletHandler
	ProfileHandler   *handler.ProfileHandler
	QuoteHandler     *handler.QuoteHandler
	AssistantHandler *handler.AssistantHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	shipmentHandler  *handler.ShipmentHandler
	walletHandler    *handler.WalletHandler
	profileHandler   *handler.ProfileHandler
	quoteHandler     *handler.QuoteHandler
	assistantHandler *handler.AssistantHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		shipmentHandler:  params.ShipmentHandler,
		walletHandler:    params.WalletHandler,
		profileHandler:   params.ProfileHandler,
		quoteHandler:     params.QuoteHandler,
		assistantHandler: params.AssistantHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public routes: anyone with a tracking number can follow a shipment, and
	// quotes need no account.
	e.GET("/track/:trackingNumber", r.shipmentHandler.Track)
	e.POST("/quotes", r.quoteHandler.GetQuote)

	// Shipment routes that require authentication
	shipmentGroup := e.Group("/shipments")
	shipmentGroup.Use(r.authMiddleware.Authenticate)
	{
		shipmentGroup.POST("", r.shipmentHandler.CreateShipment)
		shipmentGroup.GET("", r.shipmentHandler.ListShipments)
		// Role enforcement (staff/admin) happens in the usecase.
		shipmentGroup.PATCH("/:id/status", r.shipmentHandler.UpdateStatus)
	}

	// Wallet routes that require authentication
	walletGroup := e.Group("/wallet")
	walletGroup.Use(r.authMiddleware.Authenticate)
	{
		walletGroup.GET("", r.walletHandler.GetWallet)
		walletGroup.POST("/fund", r.walletHandler.Fund)
		walletGroup.POST("/pay", r.walletHandler.Pay)
	}

	// Profile routes that require authentication
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
	}

	// Assistant routes that require authentication
	assistantGroup := e.Group("/assistant")
	assistantGroup.Use(r.authMiddleware.Authenticate)
	{
		assistantGroup.POST("/advice", r.assistantHandler.GetAdvice)
		assistantGroup.POST("/summary/:trackingNumber", r.assistantHandler.SummarizeShipment)
	}
}
