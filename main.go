package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/student-hub/backend/bootstrap"
	"github.com/student-hub/backend/configs"
	_ "github.com/student-hub/backend/docs"
	"github.com/student-hub/backend/internal/middleware"
	"github.com/student-hub/backend/internal/routes"
	"github.com/student-hub/backend/store"
)

// @title           Student Hub API
// @version         1.0
// @description     Post feed backend for the student collaboration app.
// @BasePath        /
func main() {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := configs.Load()

	// --- Store selection ---
	var postStore store.PostStore
	switch cfg.StoreDriver {
	case "mongo":
		client := configs.ConnectMongo(cfg.MongoURI)
		defer configs.DisconnectMongo(client)
		if err := bootstrap.EnsurePostIndexes(client.Database(cfg.DBName)); err != nil {
			log.Fatalf("ensure indexes failed: %v", err)
		}
		postStore = store.NewMongoStore(client, cfg.DBName)
	case "memory":
		postStore = store.NewMemoryStore()
	default:
		log.Fatalf("unknown STORE_DRIVER: %s (use 'memory' or 'mongo')", cfg.StoreDriver)
	}

	// --- Fiber App Setup ---
	app := fiber.New()

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(middleware.RateLimit(rate.Limit(20), 40))
	app.Use(middleware.JWTIdentity(cfg.JWTSecret))

	// Swagger docs
	app.Get("/docs/*", swagger.HandlerDefault)

	routes.Register(app, routes.Deps{
		Store:     postStore,
		UploadDir: cfg.UploadDir,
	})

	log.Printf("listening at http://localhost:%s (store=%s)", cfg.Port, cfg.StoreDriver)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
