package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/hirebase/job-board-api/internal/models"
	"github.com/hirebase/job-board-api/internal/repository"
	"github.com/hirebase/job-board-api/internal/utils"
)

var (
	ErrJobMissingFields    = errors.New("missing required job fields")
	ErrInvalidSchedule     = errors.New(`schedule must be "Full Time" or "Part Time"`)
	ErrEmployerNotFound    = errors.New("employer profile not found")
	ErrSearchQueryRequired = errors.New("search query is required")
	ErrTagNotFound         = errors.New("tag not found")
)

// JobService handles job posting, listings, search and tag browsing.
type JobService struct {
	jobRepo      repository.JobRepository
	tagRepo      repository.TagRepository
	employerRepo repository.EmployerRepository
}

// NewJobService creates a new JobService.
func NewJobService(jobRepo repository.JobRepository, tagRepo repository.TagRepository, employerRepo repository.EmployerRepository) *JobService {
	return &JobService{
		jobRepo:      jobRepo,
		tagRepo:      tagRepo,
		employerRepo: employerRepo,
	}
}

// CreateJobInput represents the required information to post a job.
type CreateJobInput struct {
	UserID   uint64
	Title    string
	Salary   string
	Location string
	Schedule string
	URL      string
	Featured bool
	Tags     string
}

// CreateJob posts a job for the employer owned by the given user and
// associates it with the parsed tag set.
func (s *JobService) CreateJob(input CreateJobInput) (*models.Job, error) {
	if input.Title == "" || input.Salary == "" || input.Location == "" || input.Schedule == "" || input.URL == "" {
		return nil, ErrJobMissingFields
	}

	schedule := models.JobSchedule(input.Schedule)
	if !schedule.Valid() {
		return nil, ErrInvalidSchedule
	}

	employer, err := s.employerRepo.FindByUserID(input.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployerNotFound
		}
		return nil, fmt.Errorf("failed to find employer: %w", err)
	}

	job := &models.Job{
		EmployerID: employer.ID,
		Title:      input.Title,
		Salary:     input.Salary,
		Location:   input.Location,
		Schedule:   schedule,
		URL:        input.URL,
		Featured:   input.Featured,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	for _, name := range parseTagNames(input.Tags) {
		tag, err := s.tagRepo.FindOrCreate(name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve tag %q: %w", name, err)
		}
		if err := s.jobRepo.AddTag(job.ID, tag.ID); err != nil {
			return nil, fmt.Errorf("failed to tag job: %w", err)
		}
	}

	// Reload with employer and tag associations for response shaping.
	created, err := s.jobRepo.FindByID(job.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload job: %w", err)
	}

	return created, nil
}

// JobListing is the browse payload: featured jobs, regular jobs and the full tag list.
type JobListing struct {
	Featured []models.Job
	Jobs     []models.Job
	Tags     []models.Tag
	Total    int64
}

// ListJobs returns jobs newest-first, split into featured and regular, plus
// all known tags ordered by name.
func (s *JobService) ListJobs(params utils.PaginationParams) (*JobListing, error) {
	jobs, total, err := s.jobRepo.List(repository.JobFilter{Pagination: &params})
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	tags, err := s.tagRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	listing := &JobListing{Tags: tags, Total: total}
	for _, job := range jobs {
		if job.Featured {
			listing.Featured = append(listing.Featured, job)
		} else {
			listing.Jobs = append(listing.Jobs, job)
		}
	}

	return listing, nil
}

// SearchJobs matches the query as a case-insensitive substring of job titles,
// newest-first. An empty query is a caller error, not an empty result.
func (s *JobService) SearchJobs(query string, params utils.PaginationParams) ([]models.Job, int64, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, 0, ErrSearchQueryRequired
	}

	jobs, total, err := s.jobRepo.List(repository.JobFilter{
		TitleQuery: query,
		Pagination: &params,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search jobs: %w", err)
	}

	return jobs, total, nil
}

// JobsByTag returns all jobs carrying the named tag, newest-first.
func (s *JobService) JobsByTag(name string) ([]models.Job, error) {
	tag, err := s.tagRepo.FindByName(normalizeTagName(name))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to find tag: %w", err)
	}

	jobs, _, err := s.jobRepo.List(repository.JobFilter{TagID: &tag.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs for tag: %w", err)
	}

	return jobs, nil
}

// normalizeTagName trims and lowercases a tag name. Tag matching is
// deliberately case-insensitive by normalizing at every entry point.
func normalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// parseTagNames splits caller-supplied comma-separated tags, normalizes each
// segment, drops empties and de-duplicates while preserving order.
func parseTagNames(raw string) []string {
	seen := make(map[string]bool)
	var names []string

	for _, segment := range strings.Split(raw, ",") {
		name := normalizeTagName(segment)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	return names
}
