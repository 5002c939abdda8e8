package routes

import (
	"github.com/go-chi/chi/v5"

	"youthstream/palco/internal/api"
	"youthstream/palco/internal/metrics"
	"youthstream/palco/internal/middleware"
)

// RegisterAPIRoutes registers all /api routes. Route groups mirror the
// privilege tiers: optional auth for public reads, required auth for
// member actions, admin for the back office.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, metricsReg *metrics.MetricsRegistry) {

	svcs := deps.Services

	r.Route("/api", func(root chi.Router) {
		// Every route resolves the bearer token when present; absence
		// or invalidity means anonymous, never an error.
		root.Use(middleware.OptionalAuth(deps.Issuer, deps.Repo.UserGorm))

		// Public, rate-limited writes
		root.Group(func(public chi.Router) {
			public.Use(middleware.RateLimitMiddleware)
			public.Post("/auth/register", api.RegisterHandler(svcs.Auth))
			public.Post("/auth/login", api.LoginHandler(svcs.Auth, metricsReg))
			public.Post("/auth/reset-password", api.ResetPasswordHandler(svcs.Auth))
			public.Post("/donations", api.CreateDonationHandler(svcs.Donation))
		})

		// Public reads
		root.Get("/streams", api.ListStreamsHandler(svcs.Stream))
		root.Get("/streams/{id}", api.GetStreamHandler(svcs.Stream))
		root.Get("/donations", api.ListDonationsHandler(svcs.Donation))
		root.Get("/chat", api.ListChatHandler(svcs.Chat))

		// Authenticated group
		root.Group(func(member chi.Router) {
			member.Use(middleware.RequireAuth())

			member.Get("/profile/me", api.GetProfileHandler(svcs.User))
			member.Put("/profile/me", api.UpdateProfileHandler(svcs.User))
			member.Post("/chat", api.PostChatHandler(svcs.Chat))

			// Admin-only group
			member.Group(func(admin chi.Router) {
				admin.Use(middleware.IsAdminMiddleware())

				admin.Get("/admin/users", api.ListUsersHandler(svcs.User))
				admin.Post("/admin/users", api.CreateUserHandler(svcs.User))
				admin.Put("/admin/users/{id}", api.UpdateUserHandler(svcs.User))
				admin.Delete("/admin/users/{id}", api.DeleteUserHandler(svcs.User))

				admin.Post("/admin/streams", api.CreateStreamHandler(svcs.Stream))
				admin.Put("/admin/streams/{id}", api.UpdateStreamHandler(svcs.Stream))
				admin.Delete("/admin/streams/{id}", api.DeleteStreamHandler(svcs.Stream))

				admin.Post("/admin/vip/users", api.CreateVipUserHandler(svcs.Vip))
				admin.Post("/admin/vip/streams/{id}/notify", api.NotifyVipHandler(svcs.Vip))

				admin.Get("/admin/access-log", api.AccessLogHandler(svcs.AccessLog))
			})
		})
	})
}
