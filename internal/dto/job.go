package dto

import (
	"sort"
	"time"

	"github.com/hirebase/job-board-api/internal/models"
)

// TagDTO represents a tag in API responses
type TagDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// JobDTO represents a job in API responses. Employer fields always accompany
// the job, and tags are ordered by name.
type JobDTO struct {
	ID           uint64             `json:"id"`
	EmployerID   uint64             `json:"employer_id"`
	Title        string             `json:"title"`
	Salary       string             `json:"salary"`
	Location     string             `json:"location"`
	Schedule     models.JobSchedule `json:"schedule"`
	URL          string             `json:"url"`
	Featured     bool               `json:"featured"`
	EmployerName string             `json:"employer_name"`
	EmployerLogo string             `json:"employer_logo"`
	Tags         []TagDTO           `json:"tags"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// ToTagDTO converts a Tag model to TagDTO
func ToTagDTO(tag models.Tag) TagDTO {
	return TagDTO{
		ID:   tag.ID,
		Name: tag.Name,
	}
}

// ToTagDTOs converts a slice of tags
func ToTagDTOs(tags []models.Tag) []TagDTO {
	dtos := make([]TagDTO, len(tags))
	for i, tag := range tags {
		dtos[i] = ToTagDTO(tag)
	}
	return dtos
}

// ToJobDTO converts a Job model (with employer and tag links preloaded) to JobDTO
func ToJobDTO(job models.Job) JobDTO {
	dto := JobDTO{
		ID:           job.ID,
		EmployerID:   job.EmployerID,
		Title:        job.Title,
		Salary:       job.Salary,
		Location:     job.Location,
		Schedule:     job.Schedule,
		URL:          job.URL,
		Featured:     job.Featured,
		EmployerName: job.Employer.Name,
		EmployerLogo: job.Employer.LogoPath,
		Tags:         []TagDTO{},
		CreatedAt:    job.CreatedAt,
		UpdatedAt:    job.UpdatedAt,
	}

	for _, link := range job.JobTags {
		if link.Tag.ID != 0 {
			dto.Tags = append(dto.Tags, ToTagDTO(link.Tag))
		}
	}

	// Preload order is not guaranteed; keep tag lists deterministic.
	sort.Slice(dto.Tags, func(i, j int) bool {
		return dto.Tags[i].Name < dto.Tags[j].Name
	})

	return dto
}

// ToJobDTOs converts a slice of jobs
func ToJobDTOs(jobs []models.Job) []JobDTO {
	dtos := make([]JobDTO, len(jobs))
	for i, job := range jobs {
		dtos[i] = ToJobDTO(job)
	}
	return dtos
}
