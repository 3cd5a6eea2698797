package controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/KarimAldeen/MenuDeck/app/models"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/database"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/entitlements"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/env"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/session"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/usercontext"
)

type registerRequest struct {
	OwnerName      string `json:"owner_name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Phone          string `json:"phone"`
	RestaurantName string `json:"restaurant_name"`
	Description    string `json:"description"`
	Address        string `json:"address"`
	City           string `json:"city"`
	CuisineType    string `json:"cuisine_type"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates a restaurant-owner account and its restaurant in a
// single transaction. New restaurants start on the free plan with a 1-month
// window and wait for admin approval before going live.
func HandleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid request body",
		})
	}
	if req.RestaurantName == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "validation_error",
			"message": "restaurant_name is required",
		})
	}

	user, err := models.CreateUser(req.OwnerName, req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "validation_error",
			"message": err.Error(),
		})
	}
	user.Phone = req.Phone

	repos := getRepos()
	if _, err := repos.User.GetByEmail(req.Email); err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":   "conflict",
			"message": "An account with this email already exists",
		})
	}

	slug, err := uniqueSlug(slugify(req.RestaurantName), repos.Restaurant.SlugExists)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to generate restaurant slug",
		})
	}
	subdomain, err := uniqueSlug(slugify(req.RestaurantName), repos.Restaurant.SubdomainExists)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to generate subdomain",
		})
	}

	freePlanID := uint(env.GetEnvInt("FREE_PLAN_ID", 1))
	start := time.Now()
	end := start.AddDate(0, 1, 0)

	restaurant := &models.Restaurant{
		Name:               req.RestaurantName,
		NameAr:             req.RestaurantName,
		Slug:               slug,
		Subdomain:          subdomain,
		Description:        req.Description,
		Phone:              req.Phone,
		Email:              req.Email,
		Address:            req.Address,
		City:               req.City,
		CuisineType:        req.CuisineType,
		SubscriptionPlanID: freePlanID,
		SubscriptionStart:  &start,
		SubscriptionEnd:    &end,
		SubscriptionStatus: models.SubscriptionStatusActive,
		IsActive:           false, // Requires admin approval
		IsApproved:         false,
	}

	err = database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		restaurant.UserID = user.ID
		if err := tx.Create(restaurant).Error; err != nil {
			return err
		}
		userID := user.ID
		restaurantID := restaurant.ID
		return tx.Create(&models.ActivityLog{
			UserID:       &userID,
			RestaurantID: &restaurantID,
			Action:       models.ActivityRestaurantRegistered,
			Description:  "New restaurant registered",
			IPAddress:    c.IP(),
			UserAgent:    c.Get(fiber.HeaderUserAgent),
		}).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Registration failed",
		})
	}

	// Subdomain provisioning is handled out of band; record the request.
	log.Printf("Subdomain requested for restaurant %d: %s", restaurant.ID, subdomain)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Restaurant registered successfully and is awaiting admin approval",
		"data": fiber.Map{
			"user_id":       user.ID,
			"restaurant_id": restaurant.ID,
			"slug":          slug,
			"subdomain":     subdomain,
		},
	})
}

// HandleLogin verifies credentials and writes the session, including the
// entitlement snapshot taken from the restaurant's current plan row.
func HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid request body",
		})
	}

	repos := getRepos()
	user, err := repos.User.GetByEmail(req.Email)
	if err != nil || !user.IsActive || !user.CheckPassword(req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "Invalid email or password",
		})
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Session unavailable",
		})
	}
	if err := sess.Regenerate(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Session unavailable",
		})
	}

	sess.Set(usercontext.SessionKeyUserID, user.ID)
	sess.Set(usercontext.SessionKeyUserName, user.Name)
	sess.Set(usercontext.SessionKeyIsAdmin, user.IsAdmin())

	response := fiber.Map{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
	}

	restaurant, err := repos.Restaurant.GetByUserID(user.ID)
	if err == nil {
		withPlan, planErr := repos.Restaurant.GetWithPlan(restaurant.ID)

		sess.Set(usercontext.SessionKeyRestaurantID, restaurant.ID)
		sess.Set(usercontext.SessionKeyRestaurantName, restaurant.Name)

		if planErr == nil && withPlan.Plan != nil {
			snapshot := entitlements.SnapshotFromPlan(withPlan.Plan)
			if encoded, err := snapshot.Encode(); err == nil {
				sess.Set(usercontext.SessionKeySnapshot, encoded)
			}
			response["subscription_plan"] = snapshot
		}
		response["restaurant_id"] = restaurant.ID
		response["restaurant_name"] = restaurant.Name
		response["restaurant_slug"] = restaurant.Slug
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to load restaurant",
		})
	}

	if err := sess.Save(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Session unavailable",
		})
	}

	now := time.Now()
	user.LastLoginAt = &now
	_ = repos.User.Update(user)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    response,
	})
}

// HandleMe returns the identity of the current session.
func HandleMe(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	return c.JSON(fiber.Map{
		"success": true,
		"data":    userCtx,
	})
}

// HandleLogout destroys the session.
func HandleLogout(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err == nil {
		_ = sess.Destroy()
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out",
	})
}
