package repository

import (
	"gorm.io/gorm"

	"github.com/facureino/website/app/models"
)

// UserRepository defines the interface for admin-user database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Count() (int64, error)
}

// PostRepository defines the interface for blog-post database operations
type PostRepository interface {
	Create(post *models.BlogPost) error
	GetByID(id uint) (*models.BlogPost, error)
	GetBySlug(slug string) (*models.BlogPost, error)
	GetAll() ([]models.BlogPost, error)
	Update(post *models.BlogPost) error
	Delete(id uint) error
	Count() (int64, error)
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint) (bool, error)
}

// EventRepository defines the interface for event database operations
type EventRepository interface {
	Create(event *models.Event) error
	GetByID(id uint) (*models.Event, error)
	GetAll() ([]models.Event, error)
	GetUpcoming(limit int) ([]models.Event, error)
	Count() (int64, error)
}

// ContactMessageRepository defines the interface for contact-message
// database operations. Messages are insert-only audit records.
type ContactMessageRepository interface {
	Create(msg *models.ContactMessage) error
	GetRecent(limit int) ([]models.ContactMessage, error)
	Count() (int64, error)
}

// VideoRepository defines the interface for embedded-video database operations
type VideoRepository interface {
	Create(video *models.TikTokVideo) error
	GetByID(id uint) (*models.TikTokVideo, error)
	GetLatest(limit int) ([]models.TikTokVideo, error)
	Update(video *models.TikTokVideo) error
	Delete(id uint) error
	Count() (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User    UserRepository
	Post    PostRepository
	Event   EventRepository
	Contact ContactMessageRepository
	Video   VideoRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		Post:    NewPostRepository(db),
		Event:   NewEventRepository(db),
		Contact: NewContactMessageRepository(db),
		Video:   NewVideoRepository(db),
	}
}
