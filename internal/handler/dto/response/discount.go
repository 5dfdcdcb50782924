package response

import (
	"time"

	"discount-hub/internal/usecase/commands"
	"discount-hub/internal/usecase/queries"
	"discount-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

// ClaimedDiscountResponse is the body returned when a claim succeeds.
type ClaimedDiscountResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
}

func FromClaimResult(result *commands.ClaimResult) *ClaimedDiscountResponse {
	return &ClaimedDiscountResponse{
		ID:          result.DiscountID,
		Code:        result.Code,
		Description: result.Description,
	}
}

type PublicDiscountResponse struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	Description  string    `json:"description"`
	BrandID      uuid.UUID `json:"brandId"`
	BrandName    string    `json:"brandName"`
	BrandWebsite string    `json:"brandWebsite"`
}

type PublicDiscountListResponse struct {
	Items      []*PublicDiscountResponse `json:"items"`
	NextCursor *string                   `json:"nextCursor,omitempty"`
}

func FromPublicDiscountViews(views []*queries.PublicDiscountView, next *queries.Cursor) *PublicDiscountListResponse {
	items := make([]*PublicDiscountResponse, len(views))
	for i, v := range views {
		items[i] = &PublicDiscountResponse{
			ID:           v.ID,
			Code:         v.Code,
			Description:  v.Description,
			BrandID:      v.BrandID,
			BrandName:    v.BrandName,
			BrandWebsite: v.BrandWebsite,
		}
	}
	resp := &PublicDiscountListResponse{Items: items}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}

type BrandDiscountResponse struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	Description  string    `json:"description"`
	Quantity     int32     `json:"quantity"`
	ClaimedCount int32     `json:"claimedCount"`
	Balance      int32     `json:"balance"`
	Hide         bool      `json:"hide"`
	Enable       bool      `json:"enable"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromBrandDiscountView(v *queries.BrandDiscountView) *BrandDiscountResponse {
	return &BrandDiscountResponse{
		ID:           v.ID,
		Code:         v.Code,
		Description:  v.Description,
		Quantity:     v.Quantity,
		ClaimedCount: v.ClaimedCount,
		Balance:      v.Balance,
		Hide:         v.Hide,
		Enable:       v.Enable,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromBrandDiscountViews(views []*queries.BrandDiscountView) []*BrandDiscountResponse {
	items := make([]*BrandDiscountResponse, len(views))
	for i, v := range views {
		items[i] = FromBrandDiscountView(v)
	}
	return items
}

func FromDiscountSnapshot(s *shared.DiscountSnapshot) *BrandDiscountResponse {
	return &BrandDiscountResponse{
		ID:           s.ID,
		Code:         s.Code,
		Description:  s.Description,
		Quantity:     s.Quantity,
		ClaimedCount: s.ClaimedCount,
		Balance:      s.Balance(),
		Hide:         s.Hide,
		Enable:       s.Enable,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

type ClaimHistoryResponse struct {
	ClaimID       uuid.UUID `json:"claimId"`
	UserID        uuid.UUID `json:"userId"`
	UserFirstName string    `json:"userFirstName"`
	UserEmail     string    `json:"userEmail"`
	ClaimedAt     time.Time `json:"claimedAt"`
}

func FromClaimHistoryItems(items []*queries.ClaimHistoryItem) []*ClaimHistoryResponse {
	result := make([]*ClaimHistoryResponse, len(items))
	for i, item := range items {
		result[i] = &ClaimHistoryResponse{
			ClaimID:       item.ClaimID,
			UserID:        item.UserID,
			UserFirstName: item.UserFirstName,
			UserEmail:     item.UserEmail,
			ClaimedAt:     item.ClaimedAt,
		}
	}
	return result
}

type UserClaimResponse struct {
	ClaimID      uuid.UUID `json:"claimId"`
	DiscountID   uuid.UUID `json:"discountId"`
	Code         string    `json:"code"`
	Description  string    `json:"description"`
	BrandID      uuid.UUID `json:"brandId"`
	BrandName    string    `json:"brandName"`
	BrandWebsite string    `json:"brandWebsite"`
	ClaimedAt    time.Time `json:"claimedAt"`
}

func FromUserClaimItems(items []*queries.UserClaimItem) []*UserClaimResponse {
	result := make([]*UserClaimResponse, len(items))
	for i, item := range items {
		result[i] = &UserClaimResponse{
			ClaimID:      item.ClaimID,
			DiscountID:   item.DiscountID,
			Code:         item.Code,
			Description:  item.Description,
			BrandID:      item.BrandID,
			BrandName:    item.BrandName,
			BrandWebsite: item.BrandWebsite,
			ClaimedAt:    item.ClaimedAt,
		}
	}
	return result
}
