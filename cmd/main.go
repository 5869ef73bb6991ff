package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"schoolpress/internal/config"
	"schoolpress/internal/db"
	"schoolpress/internal/handlers"
	"schoolpress/internal/middleware"
	"schoolpress/internal/repository"
	"schoolpress/internal/services"
	"schoolpress/internal/storage"
)

func main() {
	cfg := config.Load()

	database := db.Connect(cfg.MongoURI, cfg.MongoDatabase)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	store, err := storage.New(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey)
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	users := repository.NewUserRepository(database)
	articles := repository.NewArticleRepository(database)

	authService := services.NewAuthService(users, cfg.JWTSecret)
	articleService := services.NewArticleService(articles)
	attachmentService := services.NewAttachmentService(articles, store)

	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService, attachmentService)

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	// Auth routes (no authentication required)
	auth := app.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Get("/role/:id", authHandler.Role)
	auth.Post("/refresh-token/:id", authHandler.Refresh)

	// Article routes: reads need a valid token, mutations additionally need
	// the tutor or admin role.
	editor := middleware.RequireEditor()
	article := app.Group("/articles", middleware.Auth(cfg.JWTSecret))
	article.Get("/", articleHandler.List)
	article.Post("/", editor, articleHandler.Create)
	article.Get("/:id", articleHandler.Get)
	article.Put("/:id", editor, articleHandler.Update)
	article.Delete("/:id", editor, articleHandler.Delete)
	article.Post("/:id/attachment", editor, articleHandler.Attach)
	article.Get("/:id/attachment", articleHandler.Download)

	log.Fatal(app.Listen(":" + cfg.Port))
}
