package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/venuvibe/venuvibe-backend/internal/config"
	"github.com/venuvibe/venuvibe-backend/internal/handlers"
	"github.com/venuvibe/venuvibe-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	oauthHandler *handlers.OAuthHandler,
	eventHandler *handlers.EventHandler,
	requestHandler *handlers.RequestHandler,
	vendorHandler *handlers.VendorHandler,
	categoryHandler *handlers.CategoryHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)

	// Public browsing: the SPA shows vendors and categories before login.
	api.Get("/vendors", vendorHandler.List)
	api.Get("/vendors/:id", vendorHandler.Get)
	api.Get("/vendors/:id/prices", vendorHandler.Prices)
	api.Get("/categories", categoryHandler.List)

	// Client auth — public, {status} envelope.
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)

	// OAuth sign-in — public, {status} envelope.
	oauth := api.Group("/oauth")
	oauth.Post("/google", oauthHandler.Google)
	oauth.Post("/facebook", oauthHandler.Facebook)

	// Client protection is attached per-route or to non-empty prefixes so
	// it never shadows the public and admin routes sharing /api.
	protected := middleware.ClientProtected(cfg)
	clientOnly := middleware.ClientRequired()

	api.Get("/me", protected, clientOnly, authHandler.Me)
	api.Put("/me", protected, clientOnly, authHandler.UpdateProfile)
	api.Put("/me/password", protected, clientOnly, authHandler.ChangePassword)

	events := api.Group("/events", protected, clientOnly)
	events.Get("/", eventHandler.List)
	events.Post("/", eventHandler.Create)
	events.Get("/:id", eventHandler.Get)
	events.Put("/:id", eventHandler.Update)
	events.Delete("/:id", eventHandler.Delete)

	requests := api.Group("/requests", protected, clientOnly)
	requests.Get("/", requestHandler.List)
	requests.Post("/", requestHandler.Create)
	requests.Put("/:id", requestHandler.Update)
	requests.Delete("/:id", requestHandler.Delete)
	// Legacy alias with French field names.
	api.Get("/requetes", protected, clientOnly, requestHandler.ListLegacy)

	// The /oauth prefix mixes public sign-in with client-scoped link
	// management, so these three are protected individually.
	oauth.Get("/providers", protected, clientOnly, oauthHandler.Providers)
	oauth.Post("/link", protected, clientOnly, oauthHandler.Link)
	oauth.Delete("/unlink/:provider", protected, clientOnly, oauthHandler.Unlink)

	// Admin routes: valid token with an admin_id claim. Login is registered
	// before the group so it stays reachable without a token.
	api.Post("/admin/login", adminHandler.Login)
	admin := api.Group("/admin", middleware.AdminProtected(cfg), middleware.AdminRequired())
	admin.Post("/logout", adminHandler.Logout)

	admin.Get("/clients", adminHandler.ListClients)
	admin.Get("/clients/:id", adminHandler.GetClient)
	admin.Delete("/clients/:id", adminHandler.DeleteClient)

	admin.Get("/events", adminHandler.ListEvents)
	admin.Put("/events/:id", adminHandler.UpdateEvent)
	admin.Delete("/events/:id", adminHandler.DeleteEvent)

	admin.Get("/requests", adminHandler.ListRequests)

	admin.Post("/vendors", vendorHandler.Create)
	admin.Put("/vendors/:id", vendorHandler.Update)
	admin.Delete("/vendors/:id", vendorHandler.Delete)
	admin.Put("/vendors/:id/prices", vendorHandler.SetPrice)

	admin.Post("/categories", categoryHandler.Create)
	admin.Put("/categories/:id", categoryHandler.Update)
	admin.Delete("/categories/:id", categoryHandler.Delete)

	admin.Get("/analytics", adminHandler.Analytics)
}
