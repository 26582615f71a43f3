package repository

import (
	"gorm.io/gorm"

	"github.com/hirebase/job-board-api/internal/models"
)

// GormEmployerRepository is a GORM implementation of EmployerRepository
type GormEmployerRepository struct {
	db *gorm.DB
}

// NewEmployerRepository creates a new EmployerRepository
func NewEmployerRepository(db *gorm.DB) EmployerRepository {
	return &GormEmployerRepository{db: db}
}

// Create creates a new employer
func (r *GormEmployerRepository) Create(employer *models.Employer) error {
	return r.db.Create(employer).Error
}

// FindByID finds an employer by ID
func (r *GormEmployerRepository) FindByID(id uint64) (*models.Employer, error) {
	var employer models.Employer
	if err := r.db.First(&employer, id).Error; err != nil {
		return nil, err
	}
	return &employer, nil
}

// FindByUserID finds the employer profile owned by a user
func (r *GormEmployerRepository) FindByUserID(userID uint64) (*models.Employer, error) {
	var employer models.Employer
	if err := r.db.Where("user_id = ?", userID).First(&employer).Error; err != nil {
		return nil, err
	}
	return &employer, nil
}

// Delete deletes an employer and all related data in a transaction
func (r *GormEmployerRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var jobIDs []uint64
		if err := tx.Model(&models.Job{}).
			Where("employer_id = ?", id).
			Pluck("id", &jobIDs).Error; err != nil {
			return err
		}

		if len(jobIDs) > 0 {
			// Tag links of the employer's jobs
			if err := tx.Where("job_id IN ?", jobIDs).Delete(&models.JobTag{}).Error; err != nil {
				return err
			}

			if err := tx.Where("employer_id = ?", id).Delete(&models.Job{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Employer{}, id).Error
	})
}
