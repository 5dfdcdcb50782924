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

type BrandHandler struct {
	directoryCommands commands.DirectoryCommands
	discountCommands  commands.DiscountCommands
	discountQueries   queries.DiscountQueries
}

func NewBrandHandler(
	directoryCommands commands.DirectoryCommands,
	discountCommands commands.DiscountCommands,
	discountQueries queries.DiscountQueries,
) *BrandHandler {
	return &BrandHandler{
		directoryCommands: directoryCommands,
		discountCommands:  discountCommands,
		discountQueries:   discountQueries,
	}
}

// @Summary Register brand
// @Description Create a brand account
// @Tags brands
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterBrandRequest true "Brand registration"
// @Success 201 {object} resdto.RegisteredResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /brands [post]
func (h *BrandHandler) Register(c *gin.Context) {
	var req reqdto.RegisterBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.directoryCommands.RegisterBrand(c.Request.Context(), req)
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

// @Summary Update brand profile
// @Description Update the authenticated brand's name or website
// @Tags brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateBrandRequest true "Fields to update"
// @Success 200 {object} resdto.BrandResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /brands/me [patch]
func (h *BrandHandler) UpdateProfile(c *gin.Context) {
	brandID, ok := middleware.GetSubjectID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	updated, err := h.directoryCommands.UpdateBrand(c.Request.Context(), brandID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBrandNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Brand not found", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBrandSnapshot(updated))
}

// @Summary List own discounts
// @Description List every discount owned by the authenticated brand
// @Tags brands
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BrandDiscountResponse
// @Failure 401 {object} httperr.Response
// @Router /brands/me/discounts [get]
func (h *BrandHandler) MyDiscounts(c *gin.Context) {
	brandID, ok := middleware.GetSubjectID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.discountQueries.ListByBrand(c.Request.Context(), brandID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBrandDiscountViews(views))
}

// @Summary Create discount
// @Description Issue a new discount owned by the authenticated brand
// @Tags brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDiscountRequest true "Discount definition"
// @Success 201 {object} resdto.RegisteredResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /brands/me/discounts [post]
func (h *BrandHandler) CreateDiscount(c *gin.Context) {
	brandID, ok := middleware.GetSubjectID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.discountCommands.CreateDiscount(c.Request.Context(), brandID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateCode):
			httperr.AbortWithError(c, http.StatusConflict, err, "Discount code already exists", nil)
		case errors.Is(err, commands.ErrBrandNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Brand not found", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.RegisteredResponse{ID: id})
}
