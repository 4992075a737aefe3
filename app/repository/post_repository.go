package repository

import (
	"gorm.io/gorm"

	"github.com/facureino/website/app/models"
)

// postRepository implements the PostRepository interface
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new blog-post repository instance
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create creates a new blog post in the database
func (r *postRepository) Create(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

// GetByID retrieves a blog post by its ID
func (r *postRepository) GetByID(id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetBySlug retrieves a blog post by its slug
func (r *postRepository) GetBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Where("slug = ?", slug).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetAll retrieves all blog posts ordered by creation descending
func (r *postRepository) GetAll() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// Update updates an existing blog post in the database
func (r *postRepository) Update(post *models.BlogPost) error {
	return r.db.Save(post).Error
}

// Delete soft deletes a blog post by its ID
func (r *postRepository) Delete(id uint) error {
	return r.db.Delete(&models.BlogPost{}, id).Error
}

// Count returns the total number of blog posts
func (r *postRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.BlogPost{}).Count(&count).Error
	return count, err
}

// SlugExists checks if a slug already exists
func (r *postRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.BlogPost{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// SlugExistsExceptID checks if a slug exists excluding a specific ID
func (r *postRepository) SlugExistsExceptID(slug string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.BlogPost{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	return count > 0, err
}
