package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirebase/job-board-api/internal/constants"
	"github.com/hirebase/job-board-api/internal/dto"
	apierrors "github.com/hirebase/job-board-api/internal/errors"
	"github.com/hirebase/job-board-api/internal/middleware"
	"github.com/hirebase/job-board-api/internal/services"
	"github.com/hirebase/job-board-api/internal/utils"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService  *services.AuthService
	tokenService *services.TokenService
	uploadDir    string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, tokenService *services.TokenService, uploadDir string) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenService: tokenService,
		uploadDir:    uploadDir,
	}
}

// Register creates an employer account from a multipart form carrying the
// account fields and the company logo.
func (h *AuthHandler) Register(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")
	employerName := c.PostForm("employer_name")

	logo, err := c.FormFile("logo")
	if err != nil {
		apierrors.BadRequest(c, "Logo is required")
		return
	}

	logoPath, err := utils.SaveLogo(c, logo, h.uploadDir)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrLogoType), errors.Is(err, utils.ErrLogoTooLarge):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to store logo")
		}
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Name:         name,
		Email:        email,
		Password:     password,
		EmployerName: employerName,
		LogoPath:     logoPath,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	token, err := h.tokenService.Issue(user.ID)
	if err != nil {
		apierrors.InternalError(c, "Failed to issue token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   token,
		"user":    dto.ToUserDTO(*user),
	})
}

// Login authenticates a user and returns a fresh token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Email and password are required")
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	token, err := h.tokenService.Issue(user.ID)
	if err != nil {
		apierrors.InternalError(c, "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    dto.ToUserDTO(*user),
	})
}

// Logout confirms logout. Tokens are stateless, so the client discards its
// copy; there is nothing to revoke server-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetCurrentUser returns the authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthenticated(c, "Not authenticated")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingFields):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidEmail):
		apierrors.BadRequestWithDetails(c, err.Error(), gin.H{"field": "email"})
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequestWithDetails(c,
			fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength),
			gin.H{"field": "password"})
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, "Email already registered. Please login or use a different email.")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthenticated(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrFailedToHashPassword),
		errors.Is(err, services.ErrFailedToCreateUser),
		errors.Is(err, services.ErrFailedToCreateEmployer):
		apierrors.InternalError(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
