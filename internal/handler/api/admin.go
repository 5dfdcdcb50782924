package api

import (
	"errors"
	"net/http"

	"discount-hub/internal/domain/user"
	"discount-hub/internal/handler/httperr"
	"discount-hub/internal/infra/dynconfig"
	"discount-hub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	directoryCommands commands.DirectoryCommands
	discountCommands  commands.DiscountCommands
	configProvider    *dynconfig.Provider
}

func NewAdminHandler(directoryCommands commands.DirectoryCommands, discountCommands commands.DiscountCommands, configProvider *dynconfig.Provider) *AdminHandler {
	return &AdminHandler{
		directoryCommands: directoryCommands,
		discountCommands:  discountCommands,
		configProvider:    configProvider,
	}
}

// @Summary Block user
// @Description Deactivate a user account; blocked users cannot log in
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/users/{id}/block [post]
func (h *AdminHandler) BlockUser(c *gin.Context) {
	h.setUserActive(c, false)
}

// @Summary Unblock user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/users/{id}/unblock [post]
func (h *AdminHandler) UnblockUser(c *gin.Context) {
	h.setUserActive(c, true)
}

func (h *AdminHandler) setUserActive(c *gin.Context, isActive bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user ID format", nil)
		return
	}

	if err := h.directoryCommands.SetUserActive(c.Request.Context(), id, isActive); err != nil {
		if errors.Is(err, commands.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Disable discount
// @Description Kill switch: stop all claiming of a discount immediately
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/discounts/{id}/disable [post]
func (h *AdminHandler) DisableDiscount(c *gin.Context) {
	h.setDiscountEnabled(c, false)
}

// @Summary Enable discount
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/discounts/{id}/enable [post]
func (h *AdminHandler) EnableDiscount(c *gin.Context) {
	h.setDiscountEnabled(c, true)
}

func (h *AdminHandler) setDiscountEnabled(c *gin.Context, enable bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid discount ID format", nil)
		return
	}

	if err := h.discountCommands.SetEnabled(c.Request.Context(), id, enable); err != nil {
		if errors.Is(err, commands.ErrDiscountNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Discount not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

type promoteRequest struct {
	Role string `json:"role" binding:"required"`
}

// @Summary Promote user
// @Description Change a user's role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body promoteRequest true "Target role"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/users/{id}/promote [post]
func (h *AdminHandler) PromoteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user ID format", nil)
		return
	}

	var req promoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	role, err := user.NewRole(req.Role)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown role", nil)
		return
	}

	if err := h.directoryCommands.PromoteUser(c.Request.Context(), id, role); err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown role", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List config parameters
// @Description Effective runtime parameters, defaults merged with overrides
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 403 {object} httperr.Response
// @Router /admin/config [get]
func (h *AdminHandler) ListConfig(c *gin.Context) {
	values, err := h.configProvider.GetAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, values)
}

type setConfigRequest struct {
	Value string `json:"value" binding:"required"`
}

// @Summary Set config parameter
// @Description Override a runtime parameter; takes effect without restart
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Parameter key"
// @Param request body setConfigRequest true "New value"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/config/{key} [put]
func (h *AdminHandler) SetConfig(c *gin.Context) {
	key := c.Param("key")

	var req setConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.configProvider.Set(c.Request.Context(), key, req.Value); err != nil {
		if errors.Is(err, dynconfig.ErrUnknownKey) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown config key", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}
