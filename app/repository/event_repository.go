package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/facureino/website/app/models"
)

// eventRepository implements the EventRepository interface
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository instance
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// Create creates a new event in the database
func (r *eventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// GetByID retrieves an event by its ID
func (r *eventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetAll retrieves all events ordered by date ascending
func (r *eventRepository) GetAll() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Order("date ASC").Find(&events).Error
	return events, err
}

// GetUpcoming retrieves events from today onwards, soonest first
func (r *eventRepository) GetUpcoming(limit int) ([]models.Event, error) {
	var events []models.Event
	today := time.Now().Truncate(24 * time.Hour)
	err := r.db.Where("date >= ?", today).Order("date ASC").Limit(limit).Find(&events).Error
	return events, err
}

// Count returns the total number of events
func (r *eventRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Event{}).Count(&count).Error
	return count, err
}
