package main

import (
	"fmt"
	"log"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/KarimAldeen/MenuDeck/app/repository"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/database"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/env"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/jobs"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/router"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/subscription"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	repository.InitializeFactory(database.GetDB())

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10 MiB, menu images only
	})
	app.Use(recover.New(), logger.New())
	app.Get("/metrics", monitor.New())

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: "./public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app)

	// Background jobs: subscription expiry sweep + statistics refresh
	jobs.GetManager(subscription.NewServiceFromDB(database.GetDB())).Start()

	return app
}
