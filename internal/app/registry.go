package app

import (
	"github.com/gin-gonic/gin"

	"ferremas-storefront/internal/auth"
	"ferremas-storefront/internal/backend"
	"ferremas-storefront/internal/cache"
	"ferremas-storefront/internal/cart"
	"ferremas-storefront/internal/catalog"
	"ferremas-storefront/internal/checkout"
	"ferremas-storefront/internal/locations"
	"ferremas-storefront/internal/messaging/kafka/producer"
	"ferremas-storefront/internal/payments"
)

func registerModules(router *gin.Engine, backendClient *backend.Client, refCache cache.Cache, publisher producer.Publisher) {
	// --- Stores ---
	// Built once here and injected; the cart's lifetime is the process,
	// its scoping is per session.
	cartStore := cart.NewStore()

	// --- Services ---
	cartService := cart.NewService(cartStore)
	catalogService := catalog.NewService(backendClient, refCache)
	locationsService := locations.NewService(backendClient, refCache)
	paymentsService := payments.NewService(backendClient, refCache)
	checkoutService := checkout.NewService(checkout.Deps{
		Backend:   backendClient,
		CartSvc:   cartService,
		Publisher: publisher,
	})

	// --- Handlers ---
	authHandler := auth.NewHandler(cartService)
	cartHandler := cart.NewHandler(cartService)
	catalogHandler := catalog.NewHandler(catalogService)
	locationsHandler := locations.NewHandler(locationsService)
	paymentsHandler := payments.NewHandler(paymentsService)
	checkoutHandler := checkout.NewHandler(checkoutService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		cart.RegisterRoutes(api, cartHandler)
		catalog.RegisterRoutes(api, catalogHandler)
		locations.RegisterRoutes(api, locationsHandler)
		payments.RegisterRoutes(api, paymentsHandler)
		checkout.RegisterRoutes(api, checkoutHandler)
	}
}
