package v1

import (
	"net/http"

	"go-careers-backend/internal/delivery/http/response"
	"go-careers-backend/internal/domain"
	"go-careers-backend/pkg/apperror"
	"go-careers-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type JobHandler struct {
	jobUC    domain.JobUsecase
	validate *validator.Validate
}

func NewJobHandler(careers *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase, validate *validator.Validate) {
	handler := &JobHandler{jobUC: jobUC, validate: validate}

	// PUBLIC - only active posts, server-side enforced
	careers.GET("/jobs", handler.PublicList)

	// PROTECTED - admin management
	jobs := protected.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.POST("", handler.Create)
		jobs.GET("/:id", handler.GetDetails)
		jobs.PUT("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
	}
	protected.GET("/stats", handler.Stats)
}

// PublicList returns active job posts for the careers page, newest first.
func (h *JobHandler) PublicList(c *gin.Context) {
	jobs, err := h.jobUC.ListActiveJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved successfully", jobs)
}

// List returns every job post with application counts for the admin view.
func (h *JobHandler) List(c *gin.Context) {
	if adminID(c) == "" {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}

	jobs, err := h.jobUC.ListJobsForAdmin(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved successfully", jobs)
}

func (h *JobHandler) Create(c *gin.Context) {
	id := adminID(c)
	if id == "" {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}

	var req validation.JobPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if errs := validation.Check(h.validate, req); errs != nil {
		c.Error(apperror.Validation("Validation failed", errs))
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	job := &domain.JobPost{
		Title:        req.Title,
		Category:     req.Category,
		Location:     req.Location,
		Type:         req.Type,
		Experience:   req.Experience,
		Description:  req.Description,
		Requirements: req.Requirements,
		IsActive:     isActive,
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), id, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job post created successfully", job)
}

// GetDetails returns a single post together with its applications.
func (h *JobHandler) GetDetails(c *gin.Context) {
	if adminID(c) == "" {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}

	job, apps, err := h.jobUC.GetJobDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job retrieved successfully", gin.H{
		"job":          job,
		"applications": apps,
	})
}

func (h *JobHandler) Update(c *gin.Context) {
	if adminID(c) == "" {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}

	var req validation.JobPostUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if errs := validation.Check(h.validate, req); errs != nil {
		c.Error(apperror.Validation("Validation failed", errs))
		return
	}

	update := &domain.JobPostUpdate{
		Title:        req.Title,
		Category:     req.Category,
		Location:     req.Location,
		Type:         req.Type,
		Experience:   req.Experience,
		Description:  req.Description,
		Requirements: req.Requirements,
		IsActive:     req.IsActive,
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job post updated successfully", job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	if adminID(c) == "" {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}

	if err := h.jobUC.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job post deleted successfully", nil)
}

// Stats backs the admin dashboard counters.
func (h *JobHandler) Stats(c *gin.Context) {
	if adminID(c) == "" {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}

	stats, err := h.jobUC.GetStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Stats retrieved successfully", stats)
}
