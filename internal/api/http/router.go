package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Tickets  *handlers.TicketsHandler
	Members  *handlers.MembersHandler
	Auth     *handlers.AuthHandler
	Users    *handlers.UsersHandler
	Messages *handlers.MessagesHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	// auth: one signup/login/logout triple per identity pool
	app.Post("/signup", cfg.Auth.SignupAdmin)
	app.Post("/signup-member", cfg.Auth.SignupMember)
	app.Post("/signup-user", cfg.Auth.SignupUser)
	app.Post("/admin-login", cfg.Auth.LoginAdmin)
	app.Post("/member-login", cfg.Auth.LoginMember)
	app.Post("/user-login", cfg.Auth.LoginUser)
	app.Get("/admin-logout", cfg.Auth.LogoutAdmin)
	app.Get("/member-logout", cfg.Auth.LogoutMember)
	app.Get("/user-logout", cfg.Auth.LogoutUser)

	// ticket lifecycle
	app.Post("/create-ticket", cfg.Tickets.Create)
	app.Put("/member-accept-ticket/:id", cfg.Tickets.Accept)
	app.Put("/close-ticket/:id", cfg.Tickets.Close)
	app.Put("/member-cannot-resolve-ticket/:id", cfg.Tickets.CannotResolve)
	app.Put("/user-edit-ticket/:id", cfg.Tickets.Edit)
	app.Put("/delete-ticket/:id", cfg.Tickets.SoftDelete)
	app.Put("/update-assign-member/:id", cfg.Tickets.AssignMember)

	// ticket listings
	app.Get("/get-all-tickets", cfg.Tickets.ListAll)
	app.Get("/get-all-tickets-sorted", cfg.Tickets.ListAllSorted)
	app.Get("/get-todays-tickets", cfg.Tickets.ListToday)
	app.Get("/get-all-tickets/:email", cfg.Tickets.ListByCreator)
	app.Get("/get-member-assigned-tickets/:email", cfg.Tickets.ListAssignedPending)
	app.Get("/get-member-accepted-tickets/:email", cfg.Tickets.ListAccepted)
	app.Get("/get-closed-tickets", cfg.Tickets.ListClosed)
	app.Get("/get-unresolved-tickets", cfg.Tickets.ListUnresolved)

	// search
	app.Get("/search-by-name/:key", cfg.Tickets.SearchByName)
	app.Get("/search-by-company/:key", cfg.Tickets.SearchByCompany)
	app.Get("/search-by-department/:key", cfg.Tickets.SearchByDepartment)
	app.Get("/search-by-member/:key", cfg.Tickets.SearchByMember)
	app.Get("/search-by-time/:key", cfg.Tickets.SearchByDay)
	app.Get("/search-tickets", cfg.Tickets.Search)
	app.Get("/company-suggestions/:key", cfg.Users.CompanySuggestions)

	// members
	app.Put("/change-member-to-unavailable/:id", cfg.Members.SetUnavailableByID)
	app.Put("/change-member-to-available/:id", cfg.Members.SetAvailableByID)
	app.Put("/member-changes-to-unavailable/:email", cfg.Members.SetUnavailableByEmail)
	app.Put("/member-changes-to-available/:email", cfg.Members.SetAvailableByEmail)
	app.Get("/get-all-members", cfg.Members.List)
	app.Get("/view-member-availability/:email", cfg.Members.ViewAvailability)
	app.Delete("/delete-member/:id", cfg.Members.Delete)

	// users
	app.Get("/get-all-users", cfg.Users.List)
	app.Get("/get-a-single-user/:email", cfg.Users.GetByEmail)

	// messages
	app.Post("/create-message", cfg.Messages.Create)
	app.Get("/view-selected-messages/:department", cfg.Messages.ListByDepartment)
}
