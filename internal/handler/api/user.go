package api

import (
	"errors"
	"net/http"

	reqdto "discount-hub/internal/handler/dto/request"
	resdto "discount-hub/internal/handler/dto/response"
	"discount-hub/internal/handler/httperr"
	"discount-hub/internal/handler/middleware"
	"discount-hub/internal/usecase/commands"
	"discount-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	directoryCommands commands.DirectoryCommands
	claimQueries      queries.ClaimQueries
}

func NewUserHandler(directoryCommands commands.DirectoryCommands, claimQueries queries.ClaimQueries) *UserHandler {
	return &UserHandler{
		directoryCommands: directoryCommands,
		claimQueries:      claimQueries,
	}
}

// @Summary Register user
// @Description Create a consumer account
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterUserRequest true "User registration"
// @Success 201 {object} resdto.RegisteredResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req reqdto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.directoryCommands.RegisterUser(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.RegisteredResponse{ID: id})
}

// @Summary My claims
// @Description List every discount the authenticated user has claimed
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.UserClaimResponse
// @Failure 401 {object} httperr.Response
// @Router /users/me/claims [get]
func (h *UserHandler) MyClaims(c *gin.Context) {
	subjectID, ok := middleware.GetSubjectID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	items, err := h.claimQueries.ListByUser(c.Request.Context(), subjectID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserClaimItems(items))
}
