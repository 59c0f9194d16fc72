package mongo

import (
	"time"

	"github.com/google/uuid"

	"erpauth/internal/domain/entity"
	"erpauth/internal/errors"
)

// Field names in the accounts collection.
const (
	fieldID                 = "_id"
	fieldUsername           = "username"
	fieldEmail              = "email"
	fieldRole               = "role"
	fieldIsActive           = "isActive"
	fieldFailedAttemptCount = "failedAttemptCount"
	fieldLockedUntil        = "lockedUntil"
	fieldLastLoginAt        = "lastLoginAt"
	fieldUpdatedAt          = "updatedAt"
)

// accountDocument is the BSON shape of an account. LockedUntil is stored as an explicit
// null rather than omitted so that update pipelines can compare it directly.
type accountDocument struct {
	ID                 string     `bson:"_id"`
	Username           string     `bson:"username"`
	Email              string     `bson:"email"`
	PasswordHash       string     `bson:"passwordHash"`
	FullName           string     `bson:"fullName"`
	Department         string     `bson:"department,omitempty"`
	PhoneNumber        string     `bson:"phoneNumber,omitempty"`
	Role               string     `bson:"role"`
	IsActive           bool       `bson:"isActive"`
	FailedAttemptCount int        `bson:"failedAttemptCount"`
	LockedUntil        *time.Time `bson:"lockedUntil"`
	LastLoginAt        *time.Time `bson:"lastLoginAt,omitempty"`
	CreatedAt          time.Time  `bson:"createdAt"`
	UpdatedAt          time.Time  `bson:"updatedAt"`
}

func fromAccountDomain(a *entity.Account) *accountDocument {
	return &accountDocument{
		ID:                 a.ID.String(),
		Username:           a.Username,
		Email:              a.Email,
		PasswordHash:       a.PasswordHash,
		FullName:           a.FullName,
		Department:         a.Department,
		PhoneNumber:        a.PhoneNumber,
		Role:               a.Role.String(),
		IsActive:           a.IsActive,
		FailedAttemptCount: a.FailedAttemptCount,
		LockedUntil:        a.LockedUntil,
		LastLoginAt:        a.LastLoginAt,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func (d *accountDocument) toDomain() (*entity.Account, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "malformed account id %q", d.ID)
	}

	return &entity.Account{
		ID:                 id,
		Username:           d.Username,
		Email:              d.Email,
		PasswordHash:       d.PasswordHash,
		FullName:           d.FullName,
		Department:         d.Department,
		PhoneNumber:        d.PhoneNumber,
		Role:               entity.Role(d.Role),
		IsActive:           d.IsActive,
		FailedAttemptCount: d.FailedAttemptCount,
		LockedUntil:        utcPtr(d.LockedUntil),
		LastLoginAt:        utcPtr(d.LastLoginAt),
		CreatedAt:          d.CreatedAt.UTC(),
		UpdatedAt:          d.UpdatedAt.UTC(),
	}, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()

	return &u
}
