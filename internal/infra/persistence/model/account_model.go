package model

import (
	"time"

	"github.com/google/uuid"

	"erpauth/internal/domain/entity"
)

// AccountModel mirrors the 'accounts' table. IDs are UUIDv7 generated by the application
// so that the same schema works on PostgreSQL and SQLite.
type AccountModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Username           string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_accounts_username"`
	Email              string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_accounts_email"`
	PasswordHash       string     `gorm:"type:varchar(255);not null"`
	FullName           string     `gorm:"type:varchar(100);not null"`
	Department         string     `gorm:"type:varchar(100)"`
	PhoneNumber        string     `gorm:"type:varchar(20)"`
	Role               string     `gorm:"type:varchar(20);not null;index:idx_accounts_role"`
	IsActive           bool       `gorm:"not null"`
	FailedAttemptCount int        `gorm:"not null"`
	LockedUntil        *time.Time `gorm:"index:idx_accounts_locked_until"`
	LastLoginAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToAccountDomain maps a persistence model to the domain entity.
func ToAccountDomain(m *AccountModel) *entity.Account {
	if m == nil {
		return nil
	}

	return &entity.Account{
		ID:                 m.ID,
		Username:           m.Username,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		FullName:           m.FullName,
		Department:         m.Department,
		PhoneNumber:        m.PhoneNumber,
		Role:               entity.Role(m.Role),
		IsActive:           m.IsActive,
		FailedAttemptCount: m.FailedAttemptCount,
		LockedUntil:        utcPtr(m.LockedUntil),
		LastLoginAt:        utcPtr(m.LastLoginAt),
		CreatedAt:          m.CreatedAt.UTC(),
		UpdatedAt:          m.UpdatedAt.UTC(),
	}
}

// FromAccountDomain maps the domain entity to a persistence model.
func FromAccountDomain(a *entity.Account) *AccountModel {
	if a == nil {
		return nil
	}

	return &AccountModel{
		ID:                 a.ID,
		Username:           a.Username,
		Email:              a.Email,
		PasswordHash:       a.PasswordHash,
		FullName:           a.FullName,
		Department:         a.Department,
		PhoneNumber:        a.PhoneNumber,
		Role:               a.Role.String(),
		IsActive:           a.IsActive,
		FailedAttemptCount: a.FailedAttemptCount,
		LockedUntil:        utcPtr(a.LockedUntil),
		LastLoginAt:        utcPtr(a.LastLoginAt),
		CreatedAt:          a.CreatedAt.UTC(),
		UpdatedAt:          a.UpdatedAt.UTC(),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()

	return &u
}
