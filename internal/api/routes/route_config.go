package routes

import (
	"foodshare/domain"
	"foodshare/internal/api/handlers"
	"foodshare/internal/middleware"
	"foodshare/pkg/session"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	PageHandler    handlers.PageHandler
	UserHandler    handlers.UserHandler
	FoodHandler    handlers.FoodHandler
	MessageHandler handlers.MessageHandler
	AdminHandler   handlers.AdminHandler
	Middleware     middleware.Middleware
	Sessions       session.Service
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Public()
	c.Authenticated()
	c.Admin()
}

// Public routes need no identity; the home page redirects logged-in visitors
// to the listings itself.
func (c *Config) Public() {
	c.App.Get("/", c.PageHandler.Home)
	c.App.Get("/about", c.PageHandler.About)

	c.App.Get("/contact", c.MessageHandler.ContactPage)
	c.App.Post("/send-message", c.MessageHandler.SendMessage)

	c.App.Get("/login", c.UserHandler.LoginPage)
	c.App.Post("/login", c.UserHandler.Login)
	c.App.Get("/register", c.UserHandler.RegisterPage)
	c.App.Post("/register", c.UserHandler.Register)
	c.App.Get("/logout", c.UserHandler.Logout)

	c.App.Get("/forgot", c.UserHandler.ForgotPage)
	c.App.Post("/forgot", c.UserHandler.ForgotPassword)
	c.App.Get("/reset", c.UserHandler.ResetPage)
	c.App.Post("/reset", c.UserHandler.ResetPassword)
}

func (c *Config) Authenticated() {
	c.App.Get("/browse", c.Middleware.RequireUser(c.Sessions), c.FoodHandler.BrowsePage)
	c.App.Get("/addItems", c.Middleware.RequireUser(c.Sessions), c.FoodHandler.AddItemsPage)
	c.App.Post("/add-food-item", c.Middleware.RequireUserStrict(c.Sessions), c.FoodHandler.AddFoodItem)
	c.App.Post("/select-item", c.Middleware.RequireUser(c.Sessions), c.FoodHandler.SelectItem)
}

func (c *Config) Admin() {
	c.App.Get("/admin", c.Middleware.RequireAdmin(c.Sessions, domain.MessageAccessDenied), c.AdminHandler.Dashboard)
	c.App.Post("/remove-item", c.Middleware.RequireAdmin(c.Sessions, domain.MessageUnauthorizedAccess), c.AdminHandler.RemoveItem)
	c.App.Post("/remove-user", c.Middleware.RequireAdmin(c.Sessions, domain.MessageUnauthorizedAccess), c.AdminHandler.RemoveUser)
}
