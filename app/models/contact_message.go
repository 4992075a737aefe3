package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ContactMessage is one submission of the public contact form. Messages are
// immutable audit records: the admin dashboard only reads them, never edits
// or deletes.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nombre    string    `gorm:"type:varchar(150);not null" json:"nombre" validate:"required,max=150"`
	Email     string    `gorm:"type:varchar(200);not null" json:"email" validate:"required,email,max=200"`
	Asunto    string    `gorm:"type:varchar(255);not null" json:"asunto" validate:"required,max=255"`
	Mensaje   string    `gorm:"type:text;not null" json:"mensaje" validate:"required"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the ContactMessage model
func (ContactMessage) TableName() string {
	return "contactos"
}

func (m *ContactMessage) Validate() error {
	v := validator.New()
	return v.Struct(m)
}
