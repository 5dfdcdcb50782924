package commands

import (
	"context"

	"discount-hub/internal/domain/brand"
	"discount-hub/internal/domain/user"
	reqdto "discount-hub/internal/handler/dto/request"
	"discount-hub/internal/infra"
	"discount-hub/internal/pkg/errs"
	"discount-hub/internal/pkg/password"
	"discount-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken   = errs.New("email already registered")
	ErrUserNotFound = errs.New("user not found")
)

type DirectoryCommands interface {
	RegisterUser(ctx context.Context, req reqdto.RegisterUserRequest) (uuid.UUID, error)
	RegisterBrand(ctx context.Context, req reqdto.RegisterBrandRequest) (uuid.UUID, error)
	SetUserActive(ctx context.Context, userID uuid.UUID, isActive bool) error
	PromoteUser(ctx context.Context, userID uuid.UUID, role user.Role) error
	UpdateBrand(ctx context.Context, brandID uuid.UUID, req reqdto.UpdateBrandRequest) (*shared.BrandSnapshot, error)
}

type directoryUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewDirectoryUseCase(uow shared.UnitOfWork) DirectoryCommands {
	return &directoryUseCaseImpl{uow: uow}
}

func (d *directoryUseCaseImpl) RegisterUser(ctx context.Context, req reqdto.RegisterUserRequest) (uuid.UUID, error) {
	if _, err := user.NewPassword(req.Password); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to hash password")
	}

	entity, err := req.ToDomain(hash)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var id uuid.UUID
	err = d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		id, txErr = tx.Users().Create(ctx, tx.DB(), entity)
		if infra.IsKind(txErr, infra.KindDuplicateKey) {
			return errs.Mark(txErr, ErrEmailTaken)
		}
		return txErr
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (d *directoryUseCaseImpl) RegisterBrand(ctx context.Context, req reqdto.RegisterBrandRequest) (uuid.UUID, error) {
	if _, err := user.NewPassword(req.Password); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to hash password")
	}

	entity, err := req.ToDomain(hash)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var id uuid.UUID
	err = d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		id, txErr = tx.Brands().Create(ctx, tx.DB(), entity)
		if infra.IsKind(txErr, infra.KindDuplicateKey) {
			return errs.Mark(txErr, ErrEmailTaken)
		}
		return txErr
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (d *directoryUseCaseImpl) SetUserActive(ctx context.Context, userID uuid.UUID, isActive bool) error {
	return d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Users().SetActive(ctx, tx.DB(), userID, isActive)
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrUserNotFound)
		}
		return err
	})
}

func (d *directoryUseCaseImpl) PromoteUser(ctx context.Context, userID uuid.UUID, role user.Role) error {
	if !role.IsValid() {
		return errs.Mark(user.ErrInvalidRole, ErrDomainValidation)
	}
	return d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Users().SetRole(ctx, tx.DB(), userID, role)
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrUserNotFound)
		}
		return err
	})
}

func (d *directoryUseCaseImpl) UpdateBrand(ctx context.Context, brandID uuid.UUID, req reqdto.UpdateBrandRequest) (*shared.BrandSnapshot, error) {
	var updated *shared.BrandSnapshot
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if req.Name == nil && req.Website == nil {
			return errs.Mark(errs.New("no fields to update"), ErrDomainValidation)
		}
		// Empty strings keep the stored value (coalesced in SQL).
		name := ""
		website := ""
		if req.Name != nil {
			n, vErr := brand.NewName(*req.Name)
			if vErr != nil {
				return errs.Mark(vErr, ErrDomainValidation)
			}
			name = n.Value()
		}
		if req.Website != nil {
			w, vErr := brand.NewWebsite(*req.Website)
			if vErr != nil {
				return errs.Mark(vErr, ErrDomainValidation)
			}
			website = w.Value()
		}

		var txErr error
		updated, txErr = tx.Brands().UpdateProfile(ctx, tx.DB(), brandID, name, website)
		if infra.IsKind(txErr, infra.KindNotFound) {
			return errs.Mark(txErr, ErrBrandNotFound)
		}
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
