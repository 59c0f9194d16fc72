package response

import (
	"time"

	"github.com/google/uuid"

	"erpauth/internal/domain/entity"
)

// AccountView is the public projection of an account. It never carries the password hash
// or the lockout counters.
type AccountView struct {
	ID         uuid.UUID  `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	FullName   string     `json:"fullName"`
	Department string     `json:"department"`
	Role       string     `json:"role"`
	IsActive   bool       `json:"isActive"`
	LastLogin  *time.Time `json:"lastLogin"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// ProfileView extends AccountView with the fields only the owner sees.
type ProfileView struct {
	AccountView
	PhoneNumber string    `json:"phoneNumber"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewAccountView projects an account for responses.
func NewAccountView(account *entity.Account) *AccountView {
	if account == nil {
		return nil
	}

	return &AccountView{
		ID:         account.ID,
		Username:   account.Username,
		Email:      account.Email,
		FullName:   account.FullName,
		Department: account.Department,
		Role:       account.Role.String(),
		IsActive:   account.IsActive,
		LastLogin:  account.LastLoginAt,
		CreatedAt:  account.CreatedAt,
	}
}

// NewProfileView projects an account for its owner.
func NewProfileView(account *entity.Account) *ProfileView {
	if account == nil {
		return nil
	}

	return &ProfileView{
		AccountView: *NewAccountView(account),
		PhoneNumber: account.PhoneNumber,
		UpdatedAt:   account.UpdatedAt,
	}
}

// StatsView is the JSON shape of the account counters.
type StatsView struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
	Faculty  int64 `json:"faculty"`
	Admins   int64 `json:"admins"`
	Students int64 `json:"students"`
	Locked   int64 `json:"locked"`
}

// NewStatsView projects account counters for responses.
func NewStatsView(stats *entity.AccountStats) *StatsView {
	if stats == nil {
		return nil
	}

	return &StatsView{
		Total:    stats.Total,
		Active:   stats.Active,
		Inactive: stats.Inactive,
		Faculty:  stats.Faculty,
		Admins:   stats.Admins,
		Students: stats.Students,
		Locked:   stats.Locked,
	}
}
