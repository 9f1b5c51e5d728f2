// Package accountrepo persists backend accounts.
package accountrepo

import (
	"time"

	"github.com/google/uuid"

	"driverapp/internal/devbackend/domain/account"
)

// AccountDTO is the row of the accounts table.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Role         string    `gorm:"type:varchar(32);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(a *account.Account) AccountDTO {
	return AccountDTO{
		ID:           a.ID(),
		Name:         a.Name(),
		Email:        a.Email(),
		Role:         a.Role(),
		PasswordHash: a.PasswordHash(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	return account.RestoreAccount(dto.ID, dto.Name, dto.Email, dto.Role, dto.PasswordHash)
}
