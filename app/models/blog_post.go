package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// BlogPost represents a blog entry written from the admin area
type BlogPost struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Title         string         `gorm:"type:varchar(255);not null" json:"title" validate:"required,min=1,max=255"`
	Slug          string         `gorm:"uniqueIndex;type:varchar(255);not null" json:"slug" validate:"required,min=1,max=255"`
	Excerpt       string         `gorm:"type:text" json:"excerpt" validate:"required"`
	Content       string         `gorm:"type:longtext" json:"content" validate:"required"`
	FeaturedImage string         `gorm:"type:varchar(512);default:null" json:"featured_image"`
	Author        string         `gorm:"type:varchar(150)" json:"author" validate:"required,max=150"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the BlogPost model
func (BlogPost) TableName() string {
	return "blog_posts"
}

func (p *BlogPost) Validate() error {
	v := validator.New()
	return v.Struct(p)
}
