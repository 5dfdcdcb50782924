package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"discount-hub/internal/domain/user"
	reqdto "discount-hub/internal/handler/dto/request"
	resdto "discount-hub/internal/handler/dto/response"
	"discount-hub/internal/handler/httperr"
	"discount-hub/internal/handler/middleware"
	"discount-hub/internal/usecase/commands"
	"discount-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DiscountHandler struct {
	claimCommands    commands.ClaimCommands
	discountCommands commands.DiscountCommands
	discountQueries  queries.DiscountQueries
	claimQueries     queries.ClaimQueries
}

func NewDiscountHandler(
	claimCommands commands.ClaimCommands,
	discountCommands commands.DiscountCommands,
	discountQueries queries.DiscountQueries,
	claimQueries queries.ClaimQueries,
) *DiscountHandler {
	return &DiscountHandler{
		claimCommands:    claimCommands,
		discountCommands: discountCommands,
		discountQueries:  discountQueries,
		claimQueries:     claimQueries,
	}
}

// @Summary List public discounts
// @Description List visible, enabled discounts with keyset pagination
// @Tags discounts
// @Produce json
// @Param cursor query string false "Opaque pagination cursor"
// @Param limit query int false "Page size (max 200)"
// @Param website query string false "Filter by brand website"
// @Param search query string false "Case-insensitive brand name search"
// @Param ids query string false "Comma-separated discount IDs"
// @Success 200 {object} resdto.PublicDiscountListResponse
// @Failure 400 {object} httperr.Response
// @Router /discounts [get]
func (h *DiscountHandler) ListPublic(c *gin.Context) {
	filter, err := parsePublicFilter(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter parameters", nil)
		return
	}

	var after *queries.Cursor
	if cursor := c.Query("cursor"); cursor != "" {
		after = &queries.Cursor{After: cursor}
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
	}

	views, next, err := h.discountQueries.ListPublic(c.Request.Context(), filter, after, limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPublicDiscountViews(views, next))
}

// @Summary Get discount
// @Description Get a discount with allocation counters (owner, staff, admin)
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Success 200 {object} resdto.BrandDiscountResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /discounts/{id} [get]
func (h *DiscountHandler) Get(c *gin.Context) {
	id, ok := h.discountID(c)
	if !ok {
		return
	}

	view, err := h.discountQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Discount not found", nil)
		return
	}

	if !h.canManage(c, view.BrandID) {
		httperr.AbortWithError(c, http.StatusForbidden, errors.New("forbidden"), "Insufficient permissions", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBrandDiscountView(view))
}

// @Summary Claim discount
// @Description Allocate one unit of the discount to the authenticated user
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Success 201 {object} resdto.ClaimedDiscountResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 406 {object} httperr.Response
// @Router /discounts/{id}/fetch [post]
func (h *DiscountHandler) Claim(c *gin.Context) {
	subjectID, ok := middleware.GetSubjectID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, ok := h.discountID(c)
	if !ok {
		return
	}

	result, err := h.claimCommands.Claim(c.Request.Context(), subjectID, id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDiscountNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Discount not found", nil)
		case errors.Is(err, commands.ErrDiscountDisabled):
			httperr.AbortWithError(c, http.StatusNotAcceptable, err, "Discount is disabled", nil)
		case errors.Is(err, commands.ErrAlreadyClaimed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Discount already claimed", nil)
		case errors.Is(err, commands.ErrDiscountExhausted):
			httperr.AbortWithError(c, http.StatusNotAcceptable, err, "Discount is exhausted", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromClaimResult(result))
}

// @Summary Update discount
// @Description Partially update a discount owned by the caller
// @Tags discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Param request body reqdto.UpdateDiscountRequest true "Fields to update"
// @Success 200 {object} resdto.BrandDiscountResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /discounts/{id} [patch]
func (h *DiscountHandler) Update(c *gin.Context) {
	id, ok := h.discountID(c)
	if !ok {
		return
	}

	view, err := h.discountQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Discount not found", nil)
		return
	}
	if !h.canManage(c, view.BrandID) {
		httperr.AbortWithError(c, http.StatusForbidden, errors.New("forbidden"), "Insufficient permissions", nil)
		return
	}

	var req reqdto.UpdateDiscountRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	updated, err := h.discountCommands.UpdateDiscount(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDiscountNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Discount not found", nil)
		case errors.Is(err, commands.ErrQuantityBelowClaimed):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Quantity cannot be lower than claimed count", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDiscountSnapshot(updated))
}

// @Summary Claim history
// @Description List claims recorded against a discount (owner, staff, admin)
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Success 200 {array} resdto.ClaimHistoryResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /discounts/{id}/claims [get]
func (h *DiscountHandler) ClaimHistory(c *gin.Context) {
	id, ok := h.discountID(c)
	if !ok {
		return
	}

	view, err := h.discountQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Discount not found", nil)
		return
	}
	if !h.canManage(c, view.BrandID) {
		httperr.AbortWithError(c, http.StatusForbidden, errors.New("forbidden"), "Insufficient permissions", nil)
		return
	}

	items, err := h.claimQueries.HistoryByDiscount(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromClaimHistoryItems(items))
}

func (h *DiscountHandler) discountID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid discount ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

// canManage: brands manage their own discounts, staff and admin manage all.
func (h *DiscountHandler) canManage(c *gin.Context, ownerBrandID uuid.UUID) bool {
	role, ok := middleware.GetSubjectRole(c)
	if !ok {
		return false
	}
	if role == user.RoleStaff || role == user.RoleAdmin {
		return true
	}
	if role != user.RoleBrand {
		return false
	}
	subjectID, ok := middleware.GetSubjectID(c)
	return ok && subjectID == ownerBrandID
}

func parsePublicFilter(c *gin.Context) (queries.PublicFilter, error) {
	var filter queries.PublicFilter

	if website := c.Query("website"); website != "" {
		filter.Website = &website
	}
	if search := c.Query("search"); search != "" {
		filter.Search = &search
	}
	if rawIDs := c.Query("ids"); rawIDs != "" {
		for _, raw := range strings.Split(rawIDs, ",") {
			id, err := uuid.Parse(strings.TrimSpace(raw))
			if err != nil {
				return queries.PublicFilter{}, err
			}
			filter.IDs = append(filter.IDs, id)
		}
	}
	return filter, nil
}
