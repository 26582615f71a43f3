package models

import (
	"time"

	"gorm.io/gorm"
)

type Employer struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	UserID    uint64         `gorm:"uniqueIndex;not null" json:"user_id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	LogoPath  string         `gorm:"type:varchar(512);not null" json:"logo_path"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	User User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Jobs []Job `gorm:"foreignKey:EmployerID" json:"jobs,omitempty"`
}
