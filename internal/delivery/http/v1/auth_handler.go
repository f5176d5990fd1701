package v1

import (
	"net/http"

	"go-careers-backend/internal/delivery/http/middleware"
	"go-careers-backend/internal/delivery/http/response"
	"go-careers-backend/internal/domain"
	"go-careers-backend/pkg/apperror"
	"go-careers-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authUC   domain.AuthUsecase
	validate *validator.Validate
}

func NewAuthHandler(auth *gin.RouterGroup, authUC domain.AuthUsecase, validate *validator.Validate) {
	handler := &AuthHandler{authUC: authUC, validate: validate}

	auth.POST("/login", handler.Login)
}

// Login authenticates an admin and sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req validation.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if errs := validation.Check(h.validate, req); errs != nil {
		c.Error(apperror.Validation("Provided some invalid details, please check and submit again.", errs))
		return
	}

	admin, token, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	middleware.SetSessionCookie(c, token)

	response.Success(c, http.StatusOK, "Welcome back, you're all set and ready to go.", gin.H{
		"admin": admin,
	})
}
