package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/KarimAldeen/MenuDeck/app/controllers"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "MenuDeck API",
		})
	})

	v1 := api.Group("/v1")

	// Public
	v1.Post("/auth/register", controllers.HandleRegister)
	v1.Post("/auth/login", controllers.HandleLogin)
	v1.Post("/auth/logout", controllers.HandleLogout)
	v1.Get("/auth/me", middleware.RequireAuth, controllers.HandleMe)
	v1.Get("/plans", controllers.HandleListPlans)
	v1.Get("/plans/:id", controllers.HandleGetPlan)

	// Authenticated restaurant owners
	restaurant := v1.Group("/restaurant", middleware.RequireRestaurant)
	restaurant.Get("/limits", controllers.HandleGetRestaurantLimits)
	restaurant.Get("/plan", controllers.HandleGetSessionPlan)
	restaurant.Get("/analytics", controllers.HandleRestaurantAnalytics)
	restaurant.Get("/categories", controllers.HandleListCategories)
	restaurant.Post("/categories", controllers.HandleCreateCategory)
	restaurant.Get("/items", controllers.HandleListMenuItems)
	restaurant.Post("/items", controllers.HandleCreateMenuItem)
	restaurant.Get("/uploads", controllers.HandleListUploads)
	restaurant.Post("/uploads", controllers.HandleUploadImage)

	// Admin
	admin := v1.Group("/admin", middleware.RequireAdmin)
	admin.Get("/overview", controllers.HandleAdminOverview)
	admin.Get("/restaurants", controllers.HandleListRestaurants)
	admin.Put("/restaurants/:id/approval", controllers.HandleApproveRestaurant)
	admin.Get("/limits", controllers.HandleGetRestaurantLimits)
	admin.Post("/plans", controllers.HandleCreatePlan)
	admin.Put("/plans/:id", controllers.HandleUpdatePlan)
	admin.Delete("/plans/:id", controllers.HandleDeletePlan)
	admin.Post("/subscriptions/assign", controllers.HandleAssignPlan)
	admin.Post("/subscriptions/extend", controllers.HandleExtendSubscription)
	admin.Post("/subscriptions/sweep", controllers.HandleSweepExpired)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
