package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	FileTypeImage = "image"
	FileTypeLogo  = "logo"
	FileTypeOther = "other"
)

// FileUpload records a stored file for a restaurant. Rows with FileType
// image or logo count against the plan's image quota.
type FileUpload struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	RestaurantID uint           `gorm:"not null;index:idx_file_uploads_restaurant_type,priority:1" json:"restaurant_id"`
	UserID       uint           `gorm:"not null;index" json:"user_id"`
	FileName     string         `gorm:"type:varchar(255);not null" json:"file_name"`
	OriginalName string         `gorm:"type:varchar(255);default:null" json:"original_name"`
	FilePath     string         `gorm:"type:varchar(255);not null" json:"file_path"`
	FileType     string         `gorm:"type:varchar(20);not null;default:'image';index:idx_file_uploads_restaurant_type,priority:2" json:"file_type"`
	MimeType     string         `gorm:"type:varchar(100);default:null" json:"mime_type"`
	FileSize     int64          `gorm:"default:0" json:"file_size"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// CountsAgainstQuota reports whether this upload consumes the image quota.
func (f *FileUpload) CountsAgainstQuota() bool {
	return f.FileType == FileTypeImage || f.FileType == FileTypeLogo
}
