package gormstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"erpauth/internal/domain/entity"
	"erpauth/internal/domain/lockout"
	"erpauth/internal/domain/repository"
)

var baseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type AccountRepositoryTestSuite struct {
	suite.Suite

	repo repository.AccountRepository
	ctx  context.Context
}

func TestAccountRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AccountRepositoryTestSuite))
}

func (s *AccountRepositoryTestSuite) SetupTest() {
	db, err := OpenSQLite(":memory:", nil, false)
	s.Require().NoError(err)
	s.Require().NoError(AutoMigrate(db))

	s.repo = NewAccountRepository(db)
	s.ctx = context.Background()
}

func (s *AccountRepositoryTestSuite) newAccount(username, email string) *entity.Account {
	id, err := uuid.NewV7()
	s.Require().NoError(err)

	return &entity.Account{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$04$hash",
		FullName:     "Test Faculty",
		Department:   "Physics",
		Role:         entity.RoleFaculty,
		IsActive:     true,
		CreatedAt:    baseTime,
		UpdatedAt:    baseTime,
	}
}

func (s *AccountRepositoryTestSuite) create(username, email string) *entity.Account {
	acc := s.newAccount(username, email)
	s.Require().NoError(s.repo.Create(s.ctx, acc))

	return acc
}

func (s *AccountRepositoryTestSuite) TestCreateAndFind() {
	acc := s.create("jdoe", "jdoe@uni.edu")

	byID, err := s.repo.FindByID(s.ctx, acc.ID)
	s.Require().NoError(err)
	s.Equal("jdoe", byID.Username)
	s.Equal(entity.RoleFaculty, byID.Role)
	s.True(byID.IsActive)
	s.Zero(byID.FailedAttemptCount)
	s.Nil(byID.LockedUntil)
	s.True(baseTime.Equal(byID.CreatedAt))

	byUsername, err := s.repo.FindByIdentifier(s.ctx, "jdoe")
	s.Require().NoError(err)
	s.Equal(acc.ID, byUsername.ID)

	byEmail, err := s.repo.FindByIdentifier(s.ctx, "jdoe@uni.edu")
	s.Require().NoError(err)
	s.Equal(acc.ID, byEmail.ID)

	_, err = s.repo.FindByIdentifier(s.ctx, "nobody")
	s.ErrorIs(err, repository.ErrAccountNotFound)

	_, err = s.repo.FindByID(s.ctx, uuid.New())
	s.ErrorIs(err, repository.ErrAccountNotFound)
}

func (s *AccountRepositoryTestSuite) TestCreate_Duplicates() {
	s.create("jdoe", "jdoe@uni.edu")

	err := s.repo.Create(s.ctx, s.newAccount("other", "jdoe@uni.edu"))
	s.ErrorIs(err, repository.ErrDuplicateEmail)

	err = s.repo.Create(s.ctx, s.newAccount("jdoe", "other@uni.edu"))
	s.ErrorIs(err, repository.ErrDuplicateUsername)
}

func (s *AccountRepositoryTestSuite) TestFindByUsernameOrEmail_PrefersEmail() {
	byUsername := s.create("alice", "alice@uni.edu")
	byEmail := s.create("bob", "bob@uni.edu")

	found, err := s.repo.FindByUsernameOrEmail(s.ctx, "alice", "bob@uni.edu")
	s.Require().NoError(err)
	s.Equal(byEmail.ID, found.ID)

	found, err = s.repo.FindByUsernameOrEmail(s.ctx, "alice", "new@uni.edu")
	s.Require().NoError(err)
	s.Equal(byUsername.ID, found.ID)

	_, err = s.repo.FindByUsernameOrEmail(s.ctx, "carol", "carol@uni.edu")
	s.ErrorIs(err, repository.ErrAccountNotFound)
}

func (s *AccountRepositoryTestSuite) TestRecordLoginFailure_LocksAtThreshold() {
	acc := s.create("jdoe", "jdoe@uni.edu")
	policy := lockout.NewPolicy(5, 2*time.Hour)

	for i := 1; i <= 4; i++ {
		updated, err := s.repo.RecordLoginFailure(s.ctx, acc.ID, policy.Failure(baseTime))
		s.Require().NoError(err)
		s.Equal(i, updated.FailedAttemptCount)
		s.Nil(updated.LockedUntil)
	}

	updated, err := s.repo.RecordLoginFailure(s.ctx, acc.ID, policy.Failure(baseTime))
	s.Require().NoError(err)
	s.Equal(5, updated.FailedAttemptCount)
	s.Require().NotNil(updated.LockedUntil)
	s.True(baseTime.Add(2 * time.Hour).Equal(*updated.LockedUntil))
	s.True(updated.IsLocked(baseTime.Add(time.Hour)))

	// Further failures while locked do not extend the lock.
	later := baseTime.Add(30 * time.Minute)
	updated, err = s.repo.RecordLoginFailure(s.ctx, acc.ID, policy.Failure(later))
	s.Require().NoError(err)
	s.Equal(6, updated.FailedAttemptCount)
	s.True(baseTime.Add(2 * time.Hour).Equal(*updated.LockedUntil))
}

func (s *AccountRepositoryTestSuite) TestRecordLoginFailure_ExpiredLockRestartsCount() {
	acc := s.create("jdoe", "jdoe@uni.edu")
	policy := lockout.NewPolicy(5, 2*time.Hour)

	for range 5 {
		_, err := s.repo.RecordLoginFailure(s.ctx, acc.ID, policy.Failure(baseTime))
		s.Require().NoError(err)
	}

	afterExpiry := baseTime.Add(2*time.Hour + time.Minute)
	updated, err := s.repo.RecordLoginFailure(s.ctx, acc.ID, policy.Failure(afterExpiry))
	s.Require().NoError(err)
	s.Equal(1, updated.FailedAttemptCount)
	s.Nil(updated.LockedUntil)
}

func (s *AccountRepositoryTestSuite) TestRecordLoginFailure_UnknownAccount() {
	_, err := s.repo.RecordLoginFailure(s.ctx, uuid.New(), lockout.NewPolicy(5, time.Hour).Failure(baseTime))
	s.ErrorIs(err, repository.ErrAccountNotFound)
}

func (s *AccountRepositoryTestSuite) TestRecordLoginFailure_ConcurrentFailuresAreNotLost() {
	acc := s.create("jdoe", "jdoe@uni.edu")
	policy := lockout.NewPolicy(5, 2*time.Hour)

	var wg sync.WaitGroup
	errs := make(chan error, 5)
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.repo.RecordLoginFailure(s.ctx, acc.ID, policy.Failure(baseTime))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.Require().NoError(err)
	}

	final, err := s.repo.FindByID(s.ctx, acc.ID)
	s.Require().NoError(err)
	s.Equal(5, final.FailedAttemptCount)
	s.NotNil(final.LockedUntil)
}

func (s *AccountRepositoryTestSuite) TestRecordLoginSuccess_Resets() {
	acc := s.create("jdoe", "jdoe@uni.edu")
	policy := lockout.NewPolicy(5, 2*time.Hour)

	for range 3 {
		_, err := s.repo.RecordLoginFailure(s.ctx, acc.ID, policy.Failure(baseTime))
		s.Require().NoError(err)
	}

	loginAt := baseTime.Add(time.Minute)
	updated, err := s.repo.RecordLoginSuccess(s.ctx, acc.ID, loginAt)
	s.Require().NoError(err)
	s.Zero(updated.FailedAttemptCount)
	s.Nil(updated.LockedUntil)
	s.Require().NotNil(updated.LastLoginAt)
	s.True(loginAt.Equal(*updated.LastLoginAt))
}

func (s *AccountRepositoryTestSuite) TestSetActiveAndStats() {
	faculty := s.create("jdoe", "jdoe@uni.edu")

	admin := s.newAccount("root", "root@uni.edu")
	admin.Role = entity.RoleAdmin
	s.Require().NoError(s.repo.Create(s.ctx, admin))

	student := s.newAccount("kid", "kid@uni.edu")
	student.Role = entity.RoleStudent
	s.Require().NoError(s.repo.Create(s.ctx, student))

	updated, err := s.repo.SetActive(s.ctx, faculty.ID, false, baseTime.Add(time.Minute))
	s.Require().NoError(err)
	s.False(updated.IsActive)

	policy := lockout.NewPolicy(1, time.Hour)
	_, err = s.repo.RecordLoginFailure(s.ctx, student.ID, policy.Failure(baseTime))
	s.Require().NoError(err)

	stats, err := s.repo.Stats(s.ctx, baseTime.Add(time.Minute))
	s.Require().NoError(err)
	s.Equal(entity.AccountStats{Total: 3, Active: 2, Inactive: 1, Faculty: 0, Admins: 1, Students: 1, Locked: 1}, *stats)

	stats, err = s.repo.Stats(s.ctx, baseTime.Add(2*time.Hour))
	s.Require().NoError(err)
	s.Zero(stats.Locked)

	_, err = s.repo.SetActive(s.ctx, uuid.New(), true, baseTime)
	s.ErrorIs(err, repository.ErrAccountNotFound)
}

func (s *AccountRepositoryTestSuite) TestPing() {
	s.NoError(s.repo.Ping(s.ctx))
}

func TestDuplicateAccountError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "postgres email",
			err:  errors.New(`ERROR: duplicate key value violates unique constraint "idx_accounts_email" (SQLSTATE 23505)`),
			want: repository.ErrDuplicateEmail,
		},
		{
			name: "sqlite username",
			err:  errors.New("constraint failed: UNIQUE constraint failed: accounts.username (2067)"),
			want: repository.ErrDuplicateUsername,
		},
		{
			name: "unrelated",
			err:  errors.New("connection refused"),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := duplicateAccountError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)

				return
			}
			require.Error(t, got)
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
