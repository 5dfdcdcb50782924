package commands

import (
	"context"

	"discount-hub/internal/domain/discount"
	reqdto "discount-hub/internal/handler/dto/request"
	"discount-hub/internal/infra"
	"discount-hub/internal/pkg/errs"
	"discount-hub/internal/pkg/patch"
	"discount-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateCode        = errs.New("discount code already exists for brand")
	ErrBrandNotFound        = errs.New("brand not found")
	ErrQuantityBelowClaimed = errs.New("quantity below claimed count")
	ErrDomainValidation     = errs.New("domain validation error")
)

type DiscountCommands interface {
	CreateDiscount(ctx context.Context, brandID uuid.UUID, req reqdto.CreateDiscountRequest) (uuid.UUID, error)
	UpdateDiscount(ctx context.Context, discountID uuid.UUID, req reqdto.UpdateDiscountRequest) (*shared.DiscountSnapshot, error)
	SetEnabled(ctx context.Context, discountID uuid.UUID, enable bool) error
}

type discountUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewDiscountUseCase(uow shared.UnitOfWork) DiscountCommands {
	return &discountUseCaseImpl{uow: uow}
}

func (d *discountUseCaseImpl) CreateDiscount(ctx context.Context, brandID uuid.UUID, req reqdto.CreateDiscountRequest) (uuid.UUID, error) {
	entity, err := req.ToDomain(brandID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var id uuid.UUID
	err = d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		id, txErr = tx.Discounts().Create(ctx, tx.DB(), entity)
		if txErr != nil {
			switch {
			case infra.IsKind(txErr, infra.KindDuplicateKey):
				return errs.Mark(txErr, ErrDuplicateCode)
			case infra.IsKind(txErr, infra.KindForeignKeyViolated):
				return errs.Mark(txErr, ErrBrandNotFound)
			default:
				return txErr
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// UpdateDiscount applies a partial update under the discount row lock so
// a concurrent claim cannot slip between the quantity check and the write.
func (d *discountUseCaseImpl) UpdateDiscount(ctx context.Context, discountID uuid.UUID, req reqdto.UpdateDiscountRequest) (*shared.DiscountSnapshot, error) {
	var updated *shared.DiscountSnapshot

	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Discounts().FindForUpdate(ctx, tx.DB(), discountID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrDiscountNotFound)
			}
			return err
		}

		entity, err := reconstructFromSnapshot(snap)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if req.Description != nil {
			description, err := discount.NewDescription(*req.Description)
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			entity.ChangeDescription(description)
		}
		if req.Quantity != nil {
			quantity, err := discount.NewQuantity(*req.Quantity)
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			if err := entity.ChangeQuantity(quantity); err != nil {
				return errs.Mark(err, ErrQuantityBelowClaimed)
			}
		}
		entity.SetHidden(patch.Coalesce(req.Hide, entity.Hidden()))
		entity.SetEnabled(patch.Coalesce(req.Enable, entity.Enabled()))

		updated, err = tx.Discounts().Update(ctx, tx.DB(), entity)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (d *discountUseCaseImpl) SetEnabled(ctx context.Context, discountID uuid.UUID, enable bool) error {
	req := reqdto.UpdateDiscountRequest{Enable: &enable}
	_, err := d.UpdateDiscount(ctx, discountID, req)
	return err
}

func reconstructFromSnapshot(snap *shared.DiscountSnapshot) (*discount.Discount, error) {
	code, err := discount.NewCode(snap.Code)
	if err != nil {
		return nil, err
	}
	description, err := discount.NewDescription(snap.Description)
	if err != nil {
		return nil, err
	}
	quantity, err := discount.NewQuantity(int(snap.Quantity))
	if err != nil {
		return nil, err
	}
	return discount.Reconstruct(
		snap.ID, snap.BrandID, code, description, quantity, int(snap.ClaimedCount),
		snap.Hide, snap.Enable, snap.CreatedAt, snap.UpdatedAt,
	), nil
}
