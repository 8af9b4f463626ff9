package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Marmosets/internal/dto"
	"github.com/lshigami/Marmosets/internal/middleware"
	"github.com/lshigami/Marmosets/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user account along with its analytics record and returns a JWT.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registration body dto.RegisterRequestDTO true "Registration data"
// @Success 200 {object} dto.AuthResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.authService.Register(req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Msg("Register: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to register user"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns a JWT.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequestDTO true "Login credentials"
// @Success 200 {object} dto.AuthResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.authService.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Msg("Login: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to log in"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Description Updates name, contact, target role, and resume text. Email and role are immutable here.
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body dto.ProfileUpdateDTO true "Profile data"
// @Success 200 {object} dto.UserResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Router /auth/profile [put]
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	var req dto.ProfileUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	userID := middleware.CurrentUserID(ctx)
	user, err := c.authService.UpdateProfile(userID, req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint("userID", userID).Msg("UpdateProfile: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update profile"})
		return
	}

	var resp dto.UserResponseDTO
	copier.Copy(&resp, user)
	resp.Role = string(user.Role)
	ctx.JSON(http.StatusOK, resp)
}
