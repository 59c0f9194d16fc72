// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"

	"erpauth/config"
	deliverycontext "erpauth/internal/delivery/context"
	"erpauth/internal/domain/entity"
	domainerrors "erpauth/internal/domain/errors"
	"erpauth/internal/domain/lockout"
	"erpauth/internal/domain/repository"
	"erpauth/internal/domain/service"
	"erpauth/internal/errors"
	"erpauth/internal/usecase"
	"erpauth/internal/util"
)

const (
	defaultPasswordMinLength = 6
	maxPasswordBytes         = 72
)

// authService implements the AuthUsecase interface.
type authService struct {
	accountRepo       repository.AccountRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	policy            lockout.Policy
	allowedDomains    []string
	passwordMinLength int
	now               service.Clock
	validate          *validator.Validate
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Clock        service.Clock `optional:"true"`
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	policy := lockout.NewPolicy(0, 0)
	passwordMinLength := defaultPasswordMinLength
	var allowedDomains []string
	if params.Config != nil && params.Config.Auth != nil {
		auth := params.Config.Auth
		policy = lockout.NewPolicy(auth.MaxLoginAttempts, auth.LockDuration)
		if auth.PasswordMinLength > 0 {
			passwordMinLength = auth.PasswordMinLength
		}
		allowedDomains = auth.AllowedDomains
	}

	clock := params.Clock
	if clock == nil {
		clock = service.SystemClock()
	}

	return &authService{
		accountRepo:       params.AccountRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		policy:            policy,
		allowedDomains:    allowedDomains,
		passwordMinLength: passwordMinLength,
		now:               clock,
		validate:          util.NewValidator(),
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates and normalizes the input, rejects duplicates and persists a new account.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.Account, error) {
	input = normalizeRegisterInput(input)
	srv.log(ctx).Info("Registration attempt", slog.String("username", input.Username))

	if err := srv.validateRegisterInput(input); err != nil {
		return nil, err
	}

	role, ok := entity.ParseRole(input.Role.String())
	if !ok {
		return nil, domainerrors.ErrInvalidRole
	}

	existing, err := srv.accountRepo.FindByUsernameOrEmail(ctx, input.Username, input.Email)
	switch {
	case err == nil:
		field := "username"
		if existing.Email == input.Email {
			field = "email"
		}
		srv.log(ctx).Info("Registration rejected: account exists", slog.String("field", field))

		return nil, domainerrors.NewDuplicateError(field)
	case !errors.Is(err, repository.ErrAccountNotFound):
		return nil, errors.Wrap(err, "failed to check existing account")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate account id")
	}

	now := srv.now()
	account := &entity.Account{
		ID:           id,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		Department:   input.Department,
		PhoneNumber:  input.PhoneNumber,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		// A concurrent registration can still win the race past the pre-check.
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, domainerrors.NewDuplicateError("email")
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, domainerrors.NewDuplicateError("username")
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account registered",
		slog.String("account_id", account.ID.String()),
		slog.String("role", account.Role.String()),
	)

	return account, nil
}

func normalizeRegisterInput(input usecase.RegisterInput) usecase.RegisterInput {
	input.Username = util.NormalizeIdentifier(input.Username)
	input.Email = util.NormalizeIdentifier(input.Email)
	input.FullName = strings.TrimSpace(input.FullName)
	input.Department = strings.TrimSpace(input.Department)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	input.Role = entity.Role(strings.ToLower(strings.TrimSpace(input.Role.String())))

	return input
}

func (srv *authService) validateRegisterInput(input usecase.RegisterInput) error {
	required := []struct {
		name  string
		value string
	}{
		{"username", input.Username},
		{"email", input.Email},
		{"password", input.Password},
		{"fullName", input.FullName},
	}

	var missing []string
	for _, field := range required {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return domainerrors.ErrMissingRegistrationFields.WithDetails("missing: " + strings.Join(missing, ", "))
	}

	if err := srv.validate.Struct(input); err != nil {
		return domainerrors.NewValidationError(util.ValidationDetails(err))
	}

	if len(input.Password) < srv.passwordMinLength {
		return domainerrors.NewValidationError(fmt.Sprintf("password: must be at least %d characters", srv.passwordMinLength))
	}

	// bcrypt only accepts inputs up to 72 bytes.
	if len(input.Password) > maxPasswordBytes {
		return domainerrors.NewValidationError(fmt.Sprintf("password: must be at most %d bytes", maxPasswordBytes))
	}

	if !util.DomainAllowed(input.Email, srv.allowedDomains) {
		return domainerrors.ErrEmailDomainNotAllowed.WithDetails("allowed domains: " + strings.Join(srv.allowedDomains, ", "))
	}

	return nil
}

// Login authenticates by username or email and applies the lockout policy.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	identifier := util.NormalizeIdentifier(input.Identifier)
	if identifier == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingLoginFields
	}

	srv.log(ctx).Info("Login attempt", slog.String("identifier", identifier))

	account, err := srv.accountRepo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Info("Login failed: unknown identifier")

			return nil, domainerrors.NewInvalidCredentialsError(0)
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	now := srv.now()
	if account.IsLocked(now) {
		minutes := srv.policy.RemainingMinutes(account, now)
		srv.log(ctx).Warn("Login blocked: account locked",
			slog.String("account_id", account.ID.String()),
			slog.Int("minutes_remaining", minutes),
		)

		return nil, domainerrors.NewAccountLockedError(minutes)
	}

	if !account.IsActive {
		srv.log(ctx).Info("Login failed: account inactive", slog.String("account_id", account.ID.String()))

		return nil, domainerrors.ErrAccountInactive
	}

	ok, err := srv.hasher.Verify(input.Password, account.PasswordHash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify password")
	}

	if !ok {
		return nil, srv.recordFailure(ctx, account, now)
	}

	account, err = srv.accountRepo.RecordLoginSuccess(ctx, account.ID, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to record login success")
	}

	token, expiresAt, err := srv.tokenService.Issue(account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("Login successful", slog.String("account_id", account.ID.String()))

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   account,
	}, nil
}

// recordFailure persists one failed attempt and builds the error returned to the caller.
func (srv *authService) recordFailure(ctx context.Context, account *entity.Account, now time.Time) error {
	updated, err := srv.accountRepo.RecordLoginFailure(ctx, account.ID, srv.policy.Failure(now))
	if err != nil {
		return errors.Wrap(err, "failed to record login failure")
	}

	remaining := srv.policy.AttemptsRemaining(updated.FailedAttemptCount)
	attrs := []any{
		slog.String("account_id", account.ID.String()),
		slog.Int("failed_attempts", updated.FailedAttemptCount),
	}
	if updated.IsLocked(now) {
		attrs = append(attrs, slog.Time("locked_until", *updated.LockedUntil))
		srv.log(ctx).Warn("Login failed: account locked", attrs...)
	} else {
		srv.log(ctx).Info("Login failed: wrong password", attrs...)
	}

	return domainerrors.NewInvalidCredentialsError(remaining)
}

// VerifyToken resolves a token to an active account.
func (srv *authService) VerifyToken(ctx context.Context, token string) (*entity.Account, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domainerrors.ErrMissingToken
	}

	claims, err := srv.tokenService.Verify(token)
	if err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountUnavailable
		}

		return nil, errors.Wrap(err, "failed to load token account")
	}

	if !account.IsActive {
		return nil, domainerrors.ErrAccountUnavailable
	}

	return account, nil
}

// Profile reloads the authenticated account.
func (srv *authService) Profile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountUnavailable
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return account, nil
}
