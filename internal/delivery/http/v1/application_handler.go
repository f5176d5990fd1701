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

type ApplicationHandler struct {
	appUC    domain.ApplicationUsecase
	validate *validator.Validate
}

func NewApplicationHandler(careers *gin.RouterGroup, protected *gin.RouterGroup, appUC domain.ApplicationUsecase, validate *validator.Validate) {
	handler := &ApplicationHandler{appUC: appUC, validate: validate}

	// PUBLIC - applicants do not authenticate
	careers.POST("/apply", handler.Apply)

	// PROTECTED - admin triage
	protected.PUT("/applications/:id", handler.UpdateStatus)
}

// Apply accepts a public job application.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req validation.JobApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if errs := validation.Check(h.validate, req); errs != nil {
		c.Error(apperror.Validation("Please check your information", errs))
		return
	}

	app := &domain.JobApplication{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       emptyToNil(req.Phone),
		ResumeURL:   emptyToNil(req.ResumeURL),
		CoverLetter: emptyToNil(req.CoverLetter),
		JobPostID:   req.JobPostID,
	}

	created, err := h.appUC.Submit(c.Request.Context(), app)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application submitted successfully! We'll be in touch soon.", created)
}

// UpdateStatus moves an application through triage.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	if adminID(c) == "" {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}

	var req validation.ApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if errs := validation.Check(h.validate, req); errs != nil {
		c.Error(apperror.Validation("Validation failed", errs))
		return
	}

	app, err := h.appUC.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application updated successfully", app)
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
