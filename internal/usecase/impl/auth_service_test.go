package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"erpauth/config"
	"erpauth/internal/domain/entity"
	domainerrors "erpauth/internal/domain/errors"
	"erpauth/internal/domain/lockout"
	"erpauth/internal/domain/repository"
	"erpauth/internal/domain/service"
	"erpauth/internal/errors"
	mockRepo "erpauth/internal/mocks/repository"
	mockSvc "erpauth/internal/mocks/service"
	"erpauth/internal/usecase"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	now          *time.Time
}

func createTestAuthService(t *testing.T, cfg *config.Config) authServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	now := testNow

	srv := NewAuthService(AuthServiceParams{
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       cfg,
		Clock:        fixedClock(&now),
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      srv,
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
		now:          &now,
	}
}

func validRegisterInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Username:   "  JDoe ",
		Email:      "JDoe@University.EDU ",
		Password:   "secret1",
		FullName:   " Jane Doe ",
		Department: "Physics",
	}
}

func activeAccount() *entity.Account {
	return &entity.Account{
		ID:           uuid.New(),
		Username:     "jdoe",
		Email:        "jdoe@university.edu",
		PasswordHash: "hashed",
		FullName:     "Jane Doe",
		Role:         entity.RoleFaculty,
		IsActive:     true,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig())
	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindByUsernameOrEmail(ctx, "jdoe", "jdoe@university.edu").
		Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)

	var stored *entity.Account
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) { stored = account }).
		Return(nil)

	account, err := fx.service.Register(ctx, validRegisterInput())
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Same(t, stored, account)
	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.Equal(t, "jdoe", account.Username)
	assert.Equal(t, "jdoe@university.edu", account.Email)
	assert.Equal(t, "Jane Doe", account.FullName)
	assert.Equal(t, "hashed", account.PasswordHash)
	assert.Equal(t, entity.RoleFaculty, account.Role)
	assert.True(t, account.IsActive)
	assert.Zero(t, account.FailedAttemptCount)
	assert.Nil(t, account.LockedUntil)
	assert.Nil(t, account.LastLoginAt)
	assert.Equal(t, testNow, account.CreatedAt)
}

func TestAuthService_Register_ExplicitRole(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig())
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByUsernameOrEmail(ctx, "jdoe", "jdoe@university.edu").Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.accountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	input := validRegisterInput()
	input.Role = " Admin "

	account, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, account.Role)
}

func TestAuthService_Register_Duplicates(t *testing.T) {
	tests := []struct {
		name     string
		existing *entity.Account
		want     string
	}{
		{
			name:     "email already registered",
			existing: &entity.Account{Username: "someone", Email: "jdoe@university.edu"},
			want:     "email",
		},
		{
			name:     "username already taken",
			existing: &entity.Account{Username: "jdoe", Email: "other@university.edu"},
			want:     "username",
		},
		{
			name:     "both match reports email",
			existing: &entity.Account{Username: "jdoe", Email: "jdoe@university.edu"},
			want:     "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t, newTestConfig())
			ctx := context.Background()

			fx.accountRepo.EXPECT().
				FindByUsernameOrEmail(ctx, "jdoe", "jdoe@university.edu").
				Return(tt.existing, nil)

			account, err := fx.service.Register(ctx, validRegisterInput())
			require.Error(t, err)
			assert.Nil(t, account)

			var dup *domainerrors.DuplicateError
			require.True(t, errors.As(err, &dup))
			assert.Equal(t, tt.want, dup.Field())
			assert.Equal(t, 400, dup.HTTPCode())
		})
	}
}

func TestAuthService_Register_DuplicateOnInsert(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig())
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByUsernameOrEmail(ctx, "jdoe", "jdoe@university.edu").Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(errors.Wrap(repository.ErrDuplicateUsername, "insert"))

	_, err := fx.service.Register(ctx, validRegisterInput())

	var dup *domainerrors.DuplicateError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "username", dup.Field())
}

func TestAuthService_Register_InputErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		mutate  func(in *usecase.RegisterInput)
		wantErr error
		details string
	}{
		{
			name: "missing fields are listed",
			cfg:  newTestConfig(),
			mutate: func(in *usecase.RegisterInput) {
				in.Password = ""
				in.FullName = "   "
			},
			wantErr: domainerrors.ErrMissingRegistrationFields,
			details: "missing: password, fullName",
		},
		{
			name:    "malformed email",
			cfg:     newTestConfig(),
			mutate:  func(in *usecase.RegisterInput) { in.Email = "not-an-email" },
			wantErr: domainerrors.ErrValidationFailed,
			details: "email",
		},
		{
			name:    "short username",
			cfg:     newTestConfig(),
			mutate:  func(in *usecase.RegisterInput) { in.Username = "jd" },
			wantErr: domainerrors.ErrValidationFailed,
			details: "username",
		},
		{
			name:    "short password",
			cfg:     newTestConfig(),
			mutate:  func(in *usecase.RegisterInput) { in.Password = "abc" },
			wantErr: domainerrors.ErrValidationFailed,
			details: "password: must be at least 6 characters",
		},
		{
			name:    "password longer than 72 bytes",
			cfg:     newTestConfig(),
			mutate:  func(in *usecase.RegisterInput) { in.Password = strings.Repeat("é", 40) },
			wantErr: domainerrors.ErrValidationFailed,
			details: "password: must be at most 72 bytes",
		},
		{
			name:    "email outside allowed domains",
			cfg:     newTestConfig("university.edu"),
			mutate:  func(in *usecase.RegisterInput) { in.Email = "jdoe@gmail.com" },
			wantErr: domainerrors.ErrEmailDomainNotAllowed,
			details: "university.edu",
		},
		{
			name:    "unknown role",
			cfg:     newTestConfig(),
			mutate:  func(in *usecase.RegisterInput) { in.Role = "superuser" },
			wantErr: domainerrors.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t, tt.cfg)

			input := validRegisterInput()
			tt.mutate(&input)

			account, err := fx.service.Register(context.Background(), input)
			require.Error(t, err)
			assert.Nil(t, account)
			assert.ErrorIs(t, err, tt.wantErr)

			if tt.details != "" {
				appErr, ok := errors.AsType[domainerrors.AppError](err)
				require.True(t, ok)
				assert.Contains(t, appErr.Details(), tt.details)
			}
		})
	}
}

func TestAuthService_Register_AllowedSubdomain(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig("university.edu"))
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByUsernameOrEmail(ctx, "jdoe", "jdoe@cs.university.edu").Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.accountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	input := validRegisterInput()
	input.Email = "jdoe@cs.university.edu"

	_, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig())

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{Identifier: "  ", Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrMissingLoginFields)

	_, err = fx.service.Login(context.Background(), usecase.LoginInput{Identifier: "jdoe"})
	assert.ErrorIs(t, err, domainerrors.ErrMissingLoginFields)
}

func TestAuthService_Login_UnknownIdentifier(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig())
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByIdentifier(ctx, "ghost@university.edu").Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Identifier: "Ghost@University.edu", Password: "secret1"})

	var invalid *domainerrors.InvalidCredentialsError
	require.True(t, errors.As(err, &invalid))
	assert.Zero(t, invalid.AttemptsRemaining())
	assert.Equal(t, 401, invalid.HTTPCode())
}

func TestAuthService_Login_Locked(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig())
	ctx := context.Background()

	account := activeAccount()
	account.FailedAttemptCount = 5
	lockedUntil := testNow.Add(90*time.Minute + 10*time.Second)
	account.LockedUntil = &lockedUntil

	fx.accountRepo.EXPECT().FindByIdentifier(ctx, "jdoe").Return(account, nil)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Identifier: "jdoe", Password: "secret1"})

	var locked *domainerrors.AccountLockedError
	require.True(t, errors.As(err, &locked))
	assert.Equal(t, 91, locked.MinutesRemaining())
	assert.Equal(t, 423, locked.HTTPCode())
}

func TestAuthService_Login_LockedEvenWithCorrectPassword(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig())
	ctx := context.Background()

	account := activeAccount()
	lockedUntil := testNow.Add(2 * time.Hour)
	account.LockedUntil = &lockedUntil

	fx.accountRepo.EXPECT().FindByIdentifier(ctx, "jdoe").Return(account, nil)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Identifier: "jdoe", Password: "correct-password"})

	var locked *domainerrors.AccountLockedError
	require.True(t, errors.As(err, &locked))
	assert.Equal(t, 120, locked.MinutesRemaining())
	fx.hasher.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestAuthService_Login_Inactive(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig())
	ctx := context.Background()

	account := activeAccount()
	account.IsActive = false

	fx.accountRepo.EXPECT().FindByIdentifier(ctx, "jdoe").Return(account, nil)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Identifier: "jdoe", Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	tests := []struct {
		name          string
		countAfter    int
		locked        bool
		wantRemaining int
	}{
		{name: "first failure", countAfter: 1, wantRemaining: 4},
		{name: "second failure", countAfter: 2, wantRemaining: 3},
		{name: "fourth failure", countAfter: 4, wantRemaining: 1},
		{name: "fifth failure locks", countAfter: 5, locked: true, wantRemaining: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t, newTestConfig())
			ctx := context.Background()

			account := activeAccount()
			updated := *account
			updated.FailedAttemptCount = tt.countAfter
			if tt.locked {
				lockedUntil := testNow.Add(2 * time.Hour)
				updated.LockedUntil = &lockedUntil
			}

			failure := lockout.NewPolicy(5, 2*time.Hour).Failure(testNow)

			fx.accountRepo.EXPECT().FindByIdentifier(ctx, "jdoe@university.edu").Return(account, nil)
			fx.hasher.EXPECT().Verify("wrong", "hashed").Return(false, nil)
			fx.accountRepo.EXPECT().RecordLoginFailure(ctx, account.ID, failure).Return(&updated, nil)

			_, err := fx.service.Login(ctx, usecase.LoginInput{Identifier: "jdoe@university.edu", Password: "wrong"})

			var invalid *domainerrors.InvalidCredentialsError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.wantRemaining, invalid.AttemptsRemaining())
		})
	}
}

func TestAuthService_Login_HasherFailure(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig())
	ctx := context.Background()

	account := activeAccount()
	fx.accountRepo.EXPECT().FindByIdentifier(ctx, "jdoe").Return(account, nil)
	fx.hasher.EXPECT().Verify("secret1", "hashed").Return(false, domainerrors.ErrPasswordHashFailed)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Identifier: "jdoe", Password: "secret1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	fx.accountRepo.AssertNotCalled(t, "RecordLoginFailure", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig())
	ctx := context.Background()

	account := activeAccount()
	account.FailedAttemptCount = 3

	updated := *account
	updated.FailedAttemptCount = 0
	updated.LastLoginAt = &testNow

	expiresAt := testNow.Add(24 * time.Hour)

	fx.accountRepo.EXPECT().FindByIdentifier(ctx, "jdoe").Return(account, nil)
	fx.hasher.EXPECT().Verify("secret1", "hashed").Return(true, nil)
	fx.accountRepo.EXPECT().RecordLoginSuccess(ctx, account.ID, testNow).Return(&updated, nil)
	fx.tokenService.EXPECT().Issue(account.ID).Return("signed.token.value", expiresAt, nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Identifier: "JDOE", Password: "secret1"})
	require.NoError(t, err)

	assert.Equal(t, "signed.token.value", out.Token)
	assert.Equal(t, expiresAt, out.ExpiresAt)
	assert.Zero(t, out.Account.FailedAttemptCount)
	require.NotNil(t, out.Account.LastLoginAt)
	assert.Equal(t, testNow, *out.Account.LastLoginAt)
}

func TestAuthService_Login_ExpiredLockAllowsLogin(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig())
	ctx := context.Background()

	account := activeAccount()
	account.FailedAttemptCount = 5
	lockedUntil := testNow.Add(-time.Second)
	account.LockedUntil = &lockedUntil

	fx.accountRepo.EXPECT().FindByIdentifier(ctx, "jdoe").Return(account, nil)
	fx.hasher.EXPECT().Verify("secret1", "hashed").Return(true, nil)
	fx.accountRepo.EXPECT().RecordLoginSuccess(ctx, account.ID, testNow).Return(account, nil)
	fx.tokenService.EXPECT().Issue(account.ID).Return("token", testNow.Add(24*time.Hour), nil)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Identifier: "jdoe", Password: "secret1"})
	require.NoError(t, err)
}

func TestAuthService_VerifyToken(t *testing.T) {
	account := activeAccount()
	claims := &service.Claims{AccountID: account.ID, IssuedAt: testNow, ExpiresAt: testNow.Add(24 * time.Hour)}

	t.Run("missing token", func(t *testing.T) {
		fx := createTestAuthService(t, newTestConfig())

		_, err := fx.service.VerifyToken(context.Background(), "  ")
		assert.ErrorIs(t, err, domainerrors.ErrMissingToken)
	})

	t.Run("verifier errors pass through", func(t *testing.T) {
		for _, verifyErr := range []error{domainerrors.ErrInvalidToken, domainerrors.ErrTokenExpired} {
			fx := createTestAuthService(t, newTestConfig())
			fx.tokenService.EXPECT().Verify("tok").Return(nil, verifyErr)

			_, err := fx.service.VerifyToken(context.Background(), "tok")
			assert.ErrorIs(t, err, verifyErr)
		}
	})

	t.Run("account gone", func(t *testing.T) {
		fx := createTestAuthService(t, newTestConfig())
		ctx := context.Background()
		fx.tokenService.EXPECT().Verify("tok").Return(claims, nil)
		fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(nil, repository.ErrAccountNotFound)

		_, err := fx.service.VerifyToken(ctx, "tok")
		assert.ErrorIs(t, err, domainerrors.ErrAccountUnavailable)
	})

	t.Run("account deactivated", func(t *testing.T) {
		fx := createTestAuthService(t, newTestConfig())
		ctx := context.Background()
		inactive := *account
		inactive.IsActive = false
		fx.tokenService.EXPECT().Verify("tok").Return(claims, nil)
		fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(&inactive, nil)

		_, err := fx.service.VerifyToken(ctx, "tok")
		assert.ErrorIs(t, err, domainerrors.ErrAccountUnavailable)
	})

	t.Run("valid", func(t *testing.T) {
		fx := createTestAuthService(t, newTestConfig())
		ctx := context.Background()
		fx.tokenService.EXPECT().Verify("tok").Return(claims, nil)
		fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

		got, err := fx.service.VerifyToken(ctx, " tok ")
		require.NoError(t, err)
		assert.Equal(t, account.ID, got.ID)
	})
}

func TestAuthService_Profile(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig())
	ctx := context.Background()
	account := activeAccount()
	missing := uuid.New()

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrAccountNotFound)

	got, err := fx.service.Profile(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, account.Email, got.Email)

	_, err = fx.service.Profile(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrAccountUnavailable)
}
