package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hirebase/job-board-api/internal/models"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

var (
	// ErrCreateUser is returned when creating a user fails inside the registration transaction.
	ErrCreateUser = errors.New("user repository: create user failed")
	// ErrCreateEmployer is returned when creating an employer fails inside the registration transaction.
	ErrCreateEmployer = errors.New("user repository: create employer failed")
)

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// CreateWithEmployer creates the user and their employer profile atomically.
func (r *GormUserRepository) CreateWithEmployer(user *models.User, employer *models.Employer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return err
			}
			return fmt.Errorf("%w: %v", ErrCreateUser, err)
		}

		employer.UserID = user.ID

		if err := tx.Create(employer).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateEmployer, err)
		}

		user.Employer = employer
		return nil
	})
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email. Emails are stored lowercased, and the
// lookup lowercases both sides so mixed-case input still matches.
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("LOWER(email) = LOWER(?)", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
