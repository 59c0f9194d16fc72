package mongo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"erpauth/internal/domain/entity"
	domainerrors "erpauth/internal/domain/errors"
	"erpauth/internal/domain/lockout"
	"erpauth/internal/domain/repository"
	"erpauth/internal/errors"
)

const (
	indexUsername    = "idx_accounts_username"
	indexEmail       = "idx_accounts_email"
	indexRole        = "idx_accounts_role"
	indexLockedUntil = "idx_accounts_locked_until"
)

// accountRepository implements repository.AccountRepository on a MongoDB collection.
type accountRepository struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewAccountRepository binds the repository to db.collection.
func NewAccountRepository(client *mongo.Client, db *mongo.Database, collection string) repository.AccountRepository {
	return &accountRepository{
		client: client,
		// Lockout state must be read from the primary.
		coll: db.Collection(collection, options.Collection().SetReadPreference(readpref.Primary())),
	}
}

// EnsureIndexes creates the unique username and email indexes plus the lookup indexes.
func EnsureIndexes(ctx context.Context, db *mongo.Database, collection string) error {
	_, err := db.Collection(collection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: fieldUsername, Value: 1}}, Options: options.Index().SetUnique(true).SetName(indexUsername)},
		{Keys: bson.D{{Key: fieldEmail, Value: 1}}, Options: options.Index().SetUnique(true).SetName(indexEmail)},
		{Keys: bson.D{{Key: fieldRole, Value: 1}}, Options: options.Index().SetName(indexRole)},
		{Keys: bson.D{{Key: fieldLockedUntil, Value: 1}}, Options: options.Index().SetName(indexLockedUntil)},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create account indexes")
	}

	return nil
}

// Create inserts a new account document.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if _, err := repo.coll.InsertOne(ctx, fromAccountDomain(account)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return duplicateAccountError(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	return nil
}

// duplicateAccountError maps an E11000 error to the offending index. Email is checked first.
func duplicateAccountError(err error) error {
	msg := err.Error()
	if strings.Contains(msg, indexEmail) || strings.Contains(msg, fieldEmail+":") {
		return repository.ErrDuplicateEmail
	}

	return repository.ErrDuplicateUsername
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, bson.D{{Key: fieldID, Value: id.String()}}, "failed to find account by id")
}

// FindByIdentifier retrieves the account whose username or email equals identifier.
func (repo *accountRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.Account, error) {
	return repo.findOne(ctx, identifierFilter(identifier), "failed to find account by identifier")
}

// FindByUsernameOrEmail checks the email first so that an email clash is reported ahead of a username clash.
func (repo *accountRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.Account, error) {
	account, err := repo.findOne(ctx, bson.D{{Key: fieldEmail, Value: email}}, "failed to find account by email")
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return account, err
	}

	return repo.findOne(ctx, bson.D{{Key: fieldUsername, Value: username}}, "failed to find account by username")
}

func identifierFilter(identifier string) bson.D {
	return bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: fieldUsername, Value: identifier}},
		bson.D{{Key: fieldEmail, Value: identifier}},
	}}}
}

func (repo *accountRepository) findOne(ctx context.Context, filter bson.D, msg string) (*entity.Account, error) {
	var doc accountDocument
	err := repo.coll.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, msg)
	}

	return doc.toDomain()
}

// failureUpdate builds the single-stage pipeline that applies one failed attempt.
// Every expression in a $set stage sees the document as it was before the stage.
func failureUpdate(failure lockout.Failure) mongo.Pipeline {
	now := failure.Now.UTC()
	lockedUntil := "$" + fieldLockedUntil

	lockActive := bson.D{{Key: "$gt", Value: bson.A{lockedUntil, now}}}
	lockExpired := bson.D{{Key: "$and", Value: bson.A{
		bson.D{{Key: "$ne", Value: bson.A{bson.D{{Key: "$ifNull", Value: bson.A{lockedUntil, nil}}}, nil}}},
		bson.D{{Key: "$lte", Value: bson.A{lockedUntil, now}}},
	}}}
	nextCount := bson.D{{Key: "$cond", Value: bson.A{
		lockExpired,
		1,
		bson.D{{Key: "$add", Value: bson.A{bson.D{{Key: "$ifNull", Value: bson.A{"$" + fieldFailedAttemptCount, 0}}}, 1}}},
	}}}
	nextLock := bson.D{{Key: "$cond", Value: bson.A{
		lockActive,
		lockedUntil,
		bson.D{{Key: "$cond", Value: bson.A{
			bson.D{{Key: "$gte", Value: bson.A{nextCount, failure.Threshold}}},
			failure.LockUntil.UTC(),
			nil,
		}}},
	}}}

	return mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: fieldFailedAttemptCount, Value: nextCount},
			{Key: fieldLockedUntil, Value: nextLock},
			{Key: fieldUpdatedAt, Value: now},
		}}},
	}
}

// RecordLoginFailure applies the failure with one findAndModify and returns the new document.
func (repo *accountRepository) RecordLoginFailure(ctx context.Context, id uuid.UUID, failure lockout.Failure) (*entity.Account, error) {
	return repo.updateOne(ctx, id, failureUpdate(failure), "failed to record login failure")
}

// RecordLoginSuccess clears the counter and lock and stamps the login time.
func (repo *accountRepository) RecordLoginSuccess(ctx context.Context, id uuid.UUID, now time.Time) (*entity.Account, error) {
	now = now.UTC()
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: fieldFailedAttemptCount, Value: 0},
		{Key: fieldLockedUntil, Value: nil},
		{Key: fieldLastLoginAt, Value: now},
		{Key: fieldUpdatedAt, Value: now},
	}}}

	return repo.updateOne(ctx, id, update, "failed to record login success")
}

// SetActive toggles the activation flag.
func (repo *accountRepository) SetActive(ctx context.Context, id uuid.UUID, active bool, now time.Time) (*entity.Account, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: fieldIsActive, Value: active},
		{Key: fieldUpdatedAt, Value: now.UTC()},
	}}}

	return repo.updateOne(ctx, id, update, "failed to update account status")
}

func (repo *accountRepository) updateOne(ctx context.Context, id uuid.UUID, update any, msg string) (*entity.Account, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc accountDocument
	err := repo.coll.FindOneAndUpdate(ctx, bson.D{{Key: fieldID, Value: id.String()}}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, msg)
	}

	return doc.toDomain()
}

func countIf(cond any) bson.D {
	return bson.D{{Key: "$sum", Value: bson.D{{Key: "$cond", Value: bson.A{cond, 1, 0}}}}}
}

func activeWithRole(role entity.Role) bson.D {
	return bson.D{{Key: "$and", Value: bson.A{
		"$" + fieldIsActive,
		bson.D{{Key: "$eq", Value: bson.A{"$" + fieldRole, role.String()}}},
	}}}
}

// statsPipeline groups the whole collection into one row of counters.
func statsPipeline(now time.Time) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "active", Value: countIf("$" + fieldIsActive)},
			{Key: "faculty", Value: countIf(activeWithRole(entity.RoleFaculty))},
			{Key: "admins", Value: countIf(activeWithRole(entity.RoleAdmin))},
			{Key: "students", Value: countIf(activeWithRole(entity.RoleStudent))},
			{Key: "locked", Value: countIf(bson.D{{Key: "$gt", Value: bson.A{"$" + fieldLockedUntil, now.UTC()}}})},
		}}},
	}
}

type statsDocument struct {
	Total    int64 `bson:"total"`
	Active   int64 `bson:"active"`
	Faculty  int64 `bson:"faculty"`
	Admins   int64 `bson:"admins"`
	Students int64 `bson:"students"`
	Locked   int64 `bson:"locked"`
}

// Stats aggregates account counters.
func (repo *accountRepository) Stats(ctx context.Context, now time.Time) (*entity.AccountStats, error) {
	cursor, err := repo.coll.Aggregate(ctx, statsPipeline(now))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count accounts")
	}
	defer func() { _ = cursor.Close(ctx) }()

	var rows []statsDocument
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode account stats")
	}

	stats := &entity.AccountStats{}
	if len(rows) == 0 {
		return stats, nil
	}

	row := rows[0]
	stats.Total = row.Total
	stats.Active = row.Active
	stats.Inactive = row.Total - row.Active
	stats.Faculty = row.Faculty
	stats.Admins = row.Admins
	stats.Students = row.Students
	stats.Locked = row.Locked

	return stats, nil
}

// Ping checks connectivity to the primary.
func (repo *accountRepository) Ping(ctx context.Context) error {
	return Healthcheck(ctx, repo.client)
}
