package gormstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"erpauth/internal/domain/entity"
	domainerrors "erpauth/internal/domain/errors"
	"erpauth/internal/domain/lockout"
	"erpauth/internal/domain/repository"
	"erpauth/internal/errors"
	"erpauth/internal/infra/persistence/model"
)

// Both CASE expressions read the pre-update row, which PostgreSQL and SQLite guarantee
// for every SET clause of a single UPDATE.
const (
	nextFailedCountSQL = "CASE WHEN locked_until IS NOT NULL AND locked_until <= ? THEN 1 ELSE failed_attempt_count + 1 END"
	nextLockedUntilSQL = "CASE WHEN locked_until IS NOT NULL AND locked_until > ? THEN locked_until " +
		"WHEN (" + nextFailedCountSQL + ") >= ? THEN ? ELSE NULL END"

	statsSelectSQL = "COUNT(*) AS total, " +
		"COALESCE(SUM(CASE WHEN is_active THEN 1 ELSE 0 END), 0) AS active, " +
		"COALESCE(SUM(CASE WHEN is_active AND role = ? THEN 1 ELSE 0 END), 0) AS faculty, " +
		"COALESCE(SUM(CASE WHEN is_active AND role = ? THEN 1 ELSE 0 END), 0) AS admins, " +
		"COALESCE(SUM(CASE WHEN is_active AND role = ? THEN 1 ELSE 0 END), 0) AS students, " +
		"COALESCE(SUM(CASE WHEN locked_until IS NOT NULL AND locked_until > ? THEN 1 ELSE 0 END), 0) AS locked"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// primary pins the statement to the write connection when replicas are configured.
func (repo *accountRepository) primary(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Write)
}

// Create persists a new account.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := model.FromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if dupErr := duplicateAccountError(err); dupErr != nil {
			return dupErr
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.CreatedAt = accountM.CreatedAt.UTC()
	account.UpdatedAt = accountM.UpdatedAt.UTC()

	return nil
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.first(repo.primary(ctx).Where("id = ?", id), "failed to find account by id")
}

// FindByIdentifier retrieves the account whose username or email equals identifier.
func (repo *accountRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.Account, error) {
	return repo.first(
		repo.primary(ctx).Where("username = ? OR email = ?", identifier, identifier),
		"failed to find account by identifier",
	)
}

// FindByUsernameOrEmail retrieves an account matching either value. Email matches win.
func (repo *accountRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.Account, error) {
	return repo.first(
		repo.primary(ctx).
			Where("email = ? OR username = ?", email, username).
			Order(clause.OrderBy{Expression: clause.Expr{
				SQL:                "CASE WHEN email = ? THEN 0 ELSE 1 END",
				Vars:               []any{email},
				WithoutParentheses: true,
			}}),
		"failed to find account by username or email",
	)
}

func (repo *accountRepository) first(query *gorm.DB, msg string) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := query.Take(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, msg)
	}

	return model.ToAccountDomain(&accountM), nil
}

// RecordLoginFailure increments the counter and applies the lock in one UPDATE, then reads
// the row back inside the same transaction.
func (repo *accountRepository) RecordLoginFailure(ctx context.Context, id uuid.UUID, failure lockout.Failure) (*entity.Account, error) {
	now := failure.Now.UTC()
	lockUntil := failure.LockUntil.UTC()

	var updated *entity.Account
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.AccountModel{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"failed_attempt_count": gorm.Expr(nextFailedCountSQL, now),
				"locked_until":         gorm.Expr(nextLockedUntilSQL, now, now, failure.Threshold, lockUntil),
				"updated_at":           now,
			})
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to record login failure")
		}
		if result.RowsAffected == 0 {
			return repository.ErrAccountNotFound
		}

		account, err := repo.first(tx.Where("id = ?", id), "failed to reload account")
		if err != nil {
			return err
		}
		updated = account

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// RecordLoginSuccess clears the counter and lock and stamps the login time.
func (repo *accountRepository) RecordLoginSuccess(ctx context.Context, id uuid.UUID, now time.Time) (*entity.Account, error) {
	now = now.UTC()

	return repo.updateAndReload(ctx, id, map[string]any{
		"failed_attempt_count": 0,
		"locked_until":         nil,
		"last_login_at":        now,
		"updated_at":           now,
	}, "failed to record login success")
}

// SetActive toggles the activation flag.
func (repo *accountRepository) SetActive(ctx context.Context, id uuid.UUID, active bool, now time.Time) (*entity.Account, error) {
	return repo.updateAndReload(ctx, id, map[string]any{
		"is_active":  active,
		"updated_at": now.UTC(),
	}, "failed to update account status")
}

func (repo *accountRepository) updateAndReload(ctx context.Context, id uuid.UUID, values map[string]any, msg string) (*entity.Account, error) {
	var updated *entity.Account
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.AccountModel{}).Where("id = ?", id).Updates(values)
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, msg)
		}
		if result.RowsAffected == 0 {
			return repository.ErrAccountNotFound
		}

		account, err := repo.first(tx.Where("id = ?", id), "failed to reload account")
		if err != nil {
			return err
		}
		updated = account

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

type statsRow struct {
	Total    int64
	Active   int64
	Faculty  int64
	Admins   int64
	Students int64
	Locked   int64
}

// Stats counts accounts in a single aggregate query.
func (repo *accountRepository) Stats(ctx context.Context, now time.Time) (*entity.AccountStats, error) {
	var row statsRow
	err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Select(statsSelectSQL,
			entity.RoleFaculty.String(), entity.RoleAdmin.String(), entity.RoleStudent.String(), now.UTC()).
		Scan(&row).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count accounts")
	}

	return &entity.AccountStats{
		Total:    row.Total,
		Active:   row.Active,
		Inactive: row.Total - row.Active,
		Faculty:  row.Faculty,
		Admins:   row.Admins,
		Students: row.Students,
		Locked:   row.Locked,
	}, nil
}

// Ping checks connectivity to the database.
func (repo *accountRepository) Ping(ctx context.Context) error {
	sqlDB, err := repo.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	return sqlDB.PingContext(ctx)
}
