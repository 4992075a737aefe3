package repository

import (
	"gorm.io/gorm"

	"github.com/facureino/website/app/models"
)

// videoRepository implements the VideoRepository interface
type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a new video repository instance
func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

// Create creates a new video row in the database
func (r *videoRepository) Create(video *models.TikTokVideo) error {
	return r.db.Create(video).Error
}

// GetByID retrieves a video by its ID
func (r *videoRepository) GetByID(id uint) (*models.TikTokVideo, error) {
	var video models.TikTokVideo
	err := r.db.First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetLatest retrieves the newest videos, newest first
func (r *videoRepository) GetLatest(limit int) ([]models.TikTokVideo, error) {
	var videos []models.TikTokVideo
	err := r.db.Order("created_at DESC").Limit(limit).Find(&videos).Error
	return videos, err
}

// Update updates an existing video row
func (r *videoRepository) Update(video *models.TikTokVideo) error {
	return r.db.Save(video).Error
}

// Delete removes a video row by its ID
func (r *videoRepository) Delete(id uint) error {
	return r.db.Delete(&models.TikTokVideo{}, id).Error
}

// Count returns the total number of video rows
func (r *videoRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.TikTokVideo{}).Count(&count).Error
	return count, err
}
