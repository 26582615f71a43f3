package repository

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hirebase/job-board-api/internal/database"
	"github.com/hirebase/job-board-api/internal/models"
)

// GormJobRepository is a GORM implementation of JobRepository
type GormJobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *gorm.DB) JobRepository {
	return &GormJobRepository{db: db}
}

// Create creates a new job
func (r *GormJobRepository) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

// FindByID finds a job by ID with its employer and tags loaded
func (r *GormJobRepository) FindByID(id uint64) (*models.Job, error) {
	var job models.Job
	if err := r.db.
		Preload("Employer").
		Preload("JobTags.Tag").
		First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// List retrieves jobs newest-first with optional filtering and pagination
func (r *GormJobRepository) List(filter JobFilter) ([]models.Job, int64, error) {
	var jobs []models.Job

	query := r.db.Model(&models.Job{})

	// Apply filters
	if filter.Featured != nil {
		query = query.Where("jobs.featured = ?", *filter.Featured)
	}
	if filter.EmployerID != nil {
		query = query.Where("jobs.employer_id = ?", *filter.EmployerID)
	}
	if filter.TagID != nil {
		tagSubQuery := r.db.Model(&models.JobTag{}).
			Select("1").
			Where("job_tag.job_id = jobs.id").
			Where("job_tag.tag_id = ?", *filter.TagID)
		query = query.Where("EXISTS (?)", tagSubQuery)
	}
	if filter.TitleQuery != "" {
		query = query.Where("LOWER(jobs.title) LIKE ?", "%"+strings.ToLower(filter.TitleQuery)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("jobs.created_at DESC")

	if filter.Pagination != nil {
		listQuery = listQuery.Scopes(database.Paginate(*filter.Pagination))
	}

	if err := listQuery.
		Preload("Employer").
		Preload("JobTags.Tag").
		Find(&jobs).Error; err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// AddTag associates a job with a tag. The composite primary key plus
// ON CONFLICT DO NOTHING makes re-adding an existing pair a no-op.
func (r *GormJobRepository) AddTag(jobID, tagID uint64) error {
	link := models.JobTag{
		JobID: jobID,
		TagID: tagID,
	}

	return r.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error
}
