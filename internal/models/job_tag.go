package models

import "time"

// JobTag links a job to a tag. The composite primary key enforces the
// unique job/tag pair, which also backstops concurrent find-or-create.
type JobTag struct {
	JobID     uint64    `gorm:"primarykey" json:"job_id"`
	TagID     uint64    `gorm:"primarykey" json:"tag_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Job Job `gorm:"foreignKey:JobID" json:"-"`
	Tag Tag `gorm:"foreignKey:TagID" json:"-"`
}

func (JobTag) TableName() string {
	return "job_tag"
}
