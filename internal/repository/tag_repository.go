package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hirebase/job-board-api/internal/models"
)

// GormTagRepository is a GORM implementation of TagRepository
type GormTagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new TagRepository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &GormTagRepository{db: db}
}

// FindOrCreate returns the tag with the given name, inserting it if absent.
// When a concurrent caller wins the insert, the unique constraint rejects
// ours; that is a benign outcome and the existing row is fetched instead.
func (r *GormTagRepository) FindOrCreate(name string) (*models.Tag, error) {
	tag, err := r.FindByName(name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := models.Tag{Name: name}
	if createErr := r.db.Create(&created).Error; createErr != nil {
		if errors.Is(createErr, gorm.ErrDuplicatedKey) {
			return r.FindByName(name)
		}
		return nil, createErr
	}

	return &created, nil
}

// FindByName finds a tag by exact name
func (r *GormTagRepository) FindByName(name string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindAll lists all tags ordered by name
func (r *GormTagRepository) FindAll() ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Order("name").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
