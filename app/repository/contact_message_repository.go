package repository

import (
	"gorm.io/gorm"

	"github.com/facureino/website/app/models"
)

// contactMessageRepository implements the ContactMessageRepository interface
type contactMessageRepository struct {
	db *gorm.DB
}

// NewContactMessageRepository creates a new contact-message repository instance
func NewContactMessageRepository(db *gorm.DB) ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

// Create stores one contact form submission
func (r *contactMessageRepository) Create(msg *models.ContactMessage) error {
	return r.db.Create(msg).Error
}

// GetRecent retrieves the most recent messages, newest first
func (r *contactMessageRepository) GetRecent(limit int) ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	err := r.db.Order("created_at DESC").Limit(limit).Find(&msgs).Error
	return msgs, err
}

// Count returns the total number of received messages
func (r *contactMessageRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactMessage{}).Count(&count).Error
	return count, err
}
