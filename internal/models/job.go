package models

import (
	"time"

	"gorm.io/gorm"
)

type JobSchedule string

const (
	ScheduleFullTime JobSchedule = "Full Time"
	SchedulePartTime JobSchedule = "Part Time"
)

// Valid reports whether the schedule is one of the two accepted values.
func (s JobSchedule) Valid() bool {
	return s == ScheduleFullTime || s == SchedulePartTime
}

type Job struct {
	ID         uint64         `gorm:"primarykey" json:"id"`
	EmployerID uint64         `gorm:"not null;index" json:"employer_id"`
	Title      string         `gorm:"type:varchar(255);not null" json:"title"`
	Salary     string         `gorm:"type:varchar(100);not null" json:"salary"`
	Location   string         `gorm:"type:varchar(255);not null" json:"location"`
	Schedule   JobSchedule    `gorm:"type:varchar(20);not null;default:'Full Time'" json:"schedule"`
	URL        string         `gorm:"type:varchar(512);not null" json:"url"`
	Featured   bool           `gorm:"not null;default:false;index" json:"featured"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Employer Employer `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
	JobTags  []JobTag `gorm:"foreignKey:JobID" json:"job_tags,omitempty"`
}
