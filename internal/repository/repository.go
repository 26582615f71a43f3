package repository

import (
	"github.com/hirebase/job-board-api/internal/models"
	"github.com/hirebase/job-board-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// CreateWithEmployer creates a user and their employer profile within a
	// single transaction; neither row survives if the other insert fails.
	CreateWithEmployer(user *models.User, employer *models.Employer) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email, case-insensitively
	FindByEmail(email string) (*models.User, error)
}

// EmployerRepository defines the interface for employer data access
type EmployerRepository interface {
	// Create creates a new employer
	Create(employer *models.Employer) error

	// FindByID finds an employer by ID
	FindByID(id uint64) (*models.Employer, error)

	// FindByUserID finds the employer profile owned by a user
	FindByUserID(userID uint64) (*models.Employer, error)

	// Delete deletes an employer and cascades to its jobs and their tag links
	Delete(id uint64) error
}

// JobFilter holds filtering options for listing jobs
type JobFilter struct {
	Featured   *bool
	EmployerID *uint64
	TagID      *uint64
	TitleQuery string
	Pagination *utils.PaginationParams
}

// JobRepository defines the interface for job data access
type JobRepository interface {
	// Create creates a new job
	Create(job *models.Job) error

	// FindByID finds a job by ID with its employer and tags loaded
	FindByID(id uint64) (*models.Job, error)

	// List retrieves jobs newest-first, with optional filtering and pagination.
	// Every returned job carries its employer and tag associations.
	List(filter JobFilter) ([]models.Job, int64, error)

	// AddTag associates a job with a tag; re-adding an existing pair is a no-op
	AddTag(jobID, tagID uint64) error
}

// TagRepository defines the interface for tag data access
type TagRepository interface {
	// FindOrCreate returns the tag with the given name, inserting it first if
	// absent. A losing concurrent insert is treated as "already exists".
	FindOrCreate(name string) (*models.Tag, error)

	// FindByName finds a tag by exact name
	FindByName(name string) (*models.Tag, error)

	// FindAll lists all tags ordered by name
	FindAll() ([]models.Tag, error)
}
