package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirebase/job-board-api/internal/dto"
	apierrors "github.com/hirebase/job-board-api/internal/errors"
	"github.com/hirebase/job-board-api/internal/middleware"
	"github.com/hirebase/job-board-api/internal/services"
	"github.com/hirebase/job-board-api/internal/utils"
)

// JobHandler coordinates job listing and posting HTTP handlers.
type JobHandler struct {
	jobService *services.JobService
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobService *services.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// ListJobs returns the public job board: featured jobs, regular jobs and the
// full tag list.
func (h *JobHandler) ListJobs(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	listing, err := h.jobService.ListJobs(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch jobs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"featured_jobs": dto.ToJobDTOs(listing.Featured),
		"jobs":          dto.ToJobDTOs(listing.Jobs),
		"tags":          dto.ToTagDTOs(listing.Tags),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: listing.Total,
		},
	})
}

// CreateJob posts a job for the authenticated employer.
func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthenticated(c, "Not authenticated")
		return
	}

	type CreateJobRequest struct {
		Title    string `json:"title" binding:"required"`
		Salary   string `json:"salary" binding:"required"`
		Location string `json:"location" binding:"required"`
		Schedule string `json:"schedule" binding:"required"`
		URL      string `json:"url" binding:"required"`
		Featured bool   `json:"featured"`
		Tags     string `json:"tags"`
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "All required fields must be provided")
		return
	}

	job, err := h.jobService.CreateJob(services.CreateJobInput{
		UserID:   userID,
		Title:    req.Title,
		Salary:   req.Salary,
		Location: req.Location,
		Schedule: req.Schedule,
		URL:      req.URL,
		Featured: req.Featured,
		Tags:     req.Tags,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrJobMissingFields):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrInvalidSchedule):
			apierrors.BadRequestWithDetails(c, err.Error(), gin.H{"field": "schedule"})
		case errors.Is(err, services.ErrEmployerNotFound):
			apierrors.NotFound(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to create job")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Job created successfully",
		"job":     dto.ToJobDTO(*job),
	})
}
