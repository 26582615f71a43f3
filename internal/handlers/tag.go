package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirebase/job-board-api/internal/dto"
	apierrors "github.com/hirebase/job-board-api/internal/errors"
	"github.com/hirebase/job-board-api/internal/services"
)

// TagHandler serves tag-filtered job listings.
type TagHandler struct {
	jobService *services.JobService
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(jobService *services.JobService) *TagHandler {
	return &TagHandler{
		jobService: jobService,
	}
}

// GetJobsByTag returns all jobs carrying the named tag.
func (h *TagHandler) GetJobsByTag(c *gin.Context) {
	jobs, err := h.jobService.JobsByTag(c.Param("name"))
	if err != nil {
		if errors.Is(err, services.ErrTagNotFound) {
			apierrors.NotFound(c, "Tag not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch jobs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs": dto.ToJobDTOs(jobs),
	})
}
