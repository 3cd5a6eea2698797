package controllers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/KarimAldeen/MenuDeck/app/models"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/env"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/subscription"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/usercontext"
)

var allowedImageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// HandleUploadImage stores an image for the caller's restaurant after the
// permission gate allows it, and records the upload row that the usage
// counter counts.
func HandleUploadImage(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	svc := getSubscriptionService()
	if !svc.CheckPermission(userCtx.Actor(), subscription.ActionUploadImage) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "quota_exceeded",
			"message": subscription.PermissionErrorMessage(subscription.ActionUploadImage),
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "No file uploaded",
		})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
			"error":   "unsupported_media_type",
			"message": "Only image files are allowed",
		})
	}

	fileType := c.FormValue("file_type", models.FileTypeImage)
	if fileType != models.FileTypeImage && fileType != models.FileTypeLogo {
		fileType = models.FileTypeImage
	}

	fileName := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	uploadDir := env.GetEnv("UPLOAD_DIR", "./uploads")
	filePath := filepath.Join(uploadDir, fmt.Sprintf("restaurant_%d", userCtx.RestaurantID), fileName)

	if err := c.SaveFile(file, filePath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to store file",
		})
	}

	upload := &models.FileUpload{
		RestaurantID: userCtx.RestaurantID,
		UserID:       userCtx.UserID,
		FileName:     fileName,
		OriginalName: file.Filename,
		FilePath:     filePath,
		FileType:     fileType,
		MimeType:     file.Header.Get("Content-Type"),
		FileSize:     file.Size,
	}
	if err := getRepos().FileUpload.Create(upload); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to record upload",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    upload,
	})
}

// HandleListUploads returns the uploads of the caller's restaurant.
func HandleListUploads(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	uploads, err := getRepos().FileUpload.GetByRestaurantID(userCtx.RestaurantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to load uploads",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    uploads,
	})
}
