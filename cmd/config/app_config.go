package config

import (
	"foodshare/internal/api/handlers"
	"foodshare/internal/api/routes"
	"foodshare/internal/middleware"
	"foodshare/internal/utils"
	"foodshare/internal/utils/mailing"
	"foodshare/internal/utils/storage"
	"foodshare/pkg/admin"
	"foodshare/pkg/food"
	"foodshare/pkg/jwt"
	"foodshare/pkg/message"
	"foodshare/pkg/session"
	"foodshare/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:             engine,
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// static assets, uploaded images included
	app.Static("/", "./public")

	// utils
	uploader := storage.NewUploader()
	mailer := mailing.NewMailer()
	sessions := session.NewSessionService(utils.GetConfig("IsProd") == "true")

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	messageRepository := message.NewMessageRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, mailer)
	foodService := food.NewFoodService(foodRepository, userRepository, uploader)
	messageService := message.NewMessageService(messageRepository, mailer)
	adminService := admin.NewAdminService(userRepository, foodRepository, messageRepository, uploader)

	// Handler
	pageHandler := handlers.NewPageHandler(sessions)
	userHandler := handlers.NewUserHandler(userService, sessions, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	messageHandler := handlers.NewMessageHandler(messageService, sessions, validator)
	adminHandler := handlers.NewAdminHandler(adminService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		PageHandler:    pageHandler,
		UserHandler:    userHandler,
		FoodHandler:    foodHandler,
		MessageHandler: messageHandler,
		AdminHandler:   adminHandler,
		Middleware:     middlewares,
		Sessions:       sessions,
	}
	routesConfig.Setup()
	return app, nil
}
