package api

import (
	"errors"
	"net/http"

	"discount-hub/internal/domain/user"
	reqdto "discount-hub/internal/handler/dto/request"
	resdto "discount-hub/internal/handler/dto/response"
	"discount-hub/internal/handler/httperr"
	"discount-hub/internal/handler/middleware"
	"discount-hub/internal/usecase/commands"
	"discount-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
	brandQueries queries.BrandQueries
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries, brandQueries queries.BrandQueries) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		brandQueries: brandQueries,
	}
}

// @Summary Login
// @Description Authenticate a user or brand account and issue an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errors.Is(err, commands.ErrAccountInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is blocked", nil)
		case errors.Is(err, commands.ErrAuthenticationFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid credentials format", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		SubjectID:   result.SubjectID,
		Role:        result.Role,
	})
}

// @Summary Current account
// @Description Return the authenticated user or brand profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	subjectID, ok := middleware.GetSubjectID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	role, _ := middleware.GetSubjectRole(c)

	if role == user.RoleBrand {
		view, err := h.brandQueries.GetByID(c.Request.Context(), subjectID)
		if err != nil {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Brand not found", nil)
			return
		}
		c.JSON(http.StatusOK, resdto.FromBrandView(view))
		return
	}

	view, err := h.userQueries.GetByID(c.Request.Context(), subjectID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}
