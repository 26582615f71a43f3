package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirebase/job-board-api/internal/dto"
	apierrors "github.com/hirebase/job-board-api/internal/errors"
	"github.com/hirebase/job-board-api/internal/services"
	"github.com/hirebase/job-board-api/internal/utils"
)

// SearchHandler serves job title search.
type SearchHandler struct {
	jobService *services.JobService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(jobService *services.JobService) *SearchHandler {
	return &SearchHandler{
		jobService: jobService,
	}
}

// SearchJobs matches jobs whose title contains the query, newest-first.
func (h *SearchHandler) SearchJobs(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	jobs, total, err := h.jobService.SearchJobs(c.Query("query"), params)
	if err != nil {
		if errors.Is(err, services.ErrSearchQueryRequired) {
			apierrors.BadRequest(c, "Search query is required")
			return
		}
		apierrors.InternalError(c, "Search failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs": dto.ToJobDTOs(jobs),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}
