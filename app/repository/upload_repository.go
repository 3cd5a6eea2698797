package repository

import (
	"github.com/KarimAldeen/MenuDeck/app/models"
	"gorm.io/gorm"
)

// fileUploadRepository implements the FileUploadRepository interface
type fileUploadRepository struct {
	db *gorm.DB
}

// NewFileUploadRepository creates a new file upload repository instance
func NewFileUploadRepository(db *gorm.DB) FileUploadRepository {
	return &fileUploadRepository{db: db}
}

func (r *fileUploadRepository) Create(upload *models.FileUpload) error {
	return r.db.Create(upload).Error
}

func (r *fileUploadRepository) GetByID(id uint) (*models.FileUpload, error) {
	var upload models.FileUpload
	err := r.db.First(&upload, id).Error
	if err != nil {
		return nil, err
	}
	return &upload, nil
}

func (r *fileUploadRepository) GetByRestaurantID(restaurantID uint) ([]models.FileUpload, error) {
	var uploads []models.FileUpload
	err := r.db.Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&uploads).Error
	return uploads, err
}

func (r *fileUploadRepository) Delete(id uint) error {
	return r.db.Delete(&models.FileUpload{}, id).Error
}

// activityLogRepository implements the ActivityLogRepository interface
type activityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository creates a new activity log repository instance
func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Create(entry *models.ActivityLog) error {
	return r.db.Create(entry).Error
}

func (r *activityLogRepository) GetByRestaurantID(restaurantID uint, limit int) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	err := r.db.Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
