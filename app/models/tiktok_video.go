package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// MaxTikTokVideos caps how many embedded videos the site shows. The limit is
// enforced in the admin controller before insert, not at the data layer.
const MaxTikTokVideos = 3

// TikTokVideo is one embedded short-form video on the home page.
type TikTokVideo struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title" validate:"required,max=255"`
	VideoID      string    `gorm:"type:varchar(50);not null" json:"video_id" validate:"required,max=50"`
	AuthorHandle string    `gorm:"type:varchar(100)" json:"author_handle" validate:"max=100"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the TikTokVideo model
func (TikTokVideo) TableName() string {
	return "tiktok_videos"
}

func (v *TikTokVideo) Validate() error {
	val := validator.New()
	return val.Struct(v)
}

// EmbedURL builds the platform embed player URL for this video.
func (v *TikTokVideo) EmbedURL() string {
	return "https://www.tiktok.com/embed/v2/" + v.VideoID
}

// AuthorURL links to the author's profile page. A leading "@" in the
// stored handle is tolerated.
func (v *TikTokVideo) AuthorURL() string {
	return "https://www.tiktok.com/@" + strings.TrimPrefix(v.AuthorHandle, "@")
}
