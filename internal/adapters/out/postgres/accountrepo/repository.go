package accountrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"driverapp/internal/devbackend/domain/account"
	"driverapp/internal/devbackend/ports"
	"driverapp/internal/pkg/errs"
)

var _ ports.AccountRepository = &GormAccountRepository{}

// GormAccountRepository implements AccountRepository using GORM. The *gorm.DB
// must be opened with TranslateError so unique violations surface as
// gorm.ErrDuplicatedKey.
type GormAccountRepository struct {
	db *gorm.DB
}

func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", account.ErrEmailTaken, dto.Email)
		}
		return err
	}
	return nil
}

func (r *GormAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	normalized := account.NormalizeEmail(email)
	if normalized == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", normalized).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", normalized)
		}
		return nil, err
	}
	return toDomain(dto)
}
