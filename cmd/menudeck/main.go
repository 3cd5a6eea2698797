package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/KarimAldeen/MenuDeck/app/repository"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/database"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/env"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/jobs"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/router"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/subscription"
)

// Slim entrypoint without the monitor and swagger extras, intended for
// containerized deployments.
func main() {
	env.SetupEnvFile()
	database.SetupDatabase()
	repository.InitializeFactory(database.GetDB())

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})
	app.Use(recover.New(), logger.New())

	router.InstallRouter(app)

	jobs.GetManager(subscription.NewServiceFromDB(database.GetDB())).Start()

	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "0.0.0.0"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}
