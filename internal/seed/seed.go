// Package seed registers fixture accounts that are not yet in the credential store.
package seed

import (
	"context"
	"log/slog"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	domainerrors "erpauth/internal/domain/errors"
	"erpauth/internal/errors"
	"erpauth/internal/usecase"
)

// Fixture is the YAML document read by LoadFixture.
type Fixture struct {
	Accounts []usecase.RegisterInput `json:"accounts"`
}

// Result counts what Run did with each fixture account.
type Result struct {
	Created int
	Skipped int
	Failed  int
}

// LoadFixture reads a YAML file with a top-level "accounts" list.
func LoadFixture(path string) (*Fixture, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "failed to read fixture %s", path)
	}

	var fixture Fixture
	if err := k.UnmarshalWithConf("", &fixture, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, errors.Wrapf(err, "failed to decode fixture %s", path)
	}

	return &fixture, nil
}

// Seeder registers accounts through the auth usecase so fixtures obey the same rules as sign-ups.
type Seeder struct {
	auth   usecase.AuthUsecase
	logger *slog.Logger
}

// NewSeeder creates a Seeder.
func NewSeeder(auth usecase.AuthUsecase, logger *slog.Logger) *Seeder {
	return &Seeder{auth: auth, logger: logger}
}

// Run registers every account, skipping those whose username or email already exists.
// A failing account is logged and counted; the remaining ones are still processed.
func (s *Seeder) Run(ctx context.Context, accounts []usecase.RegisterInput) (Result, error) {
	var result Result

	for _, input := range accounts {
		if err := ctx.Err(); err != nil {
			return result, errors.WithStack(err)
		}

		account, err := s.auth.Register(ctx, input)
		if err != nil {
			if _, dup := errors.AsType[*domainerrors.DuplicateError](err); dup {
				s.logger.Info("Skipped existing account", slog.String("username", input.Username))
				result.Skipped++

				continue
			}

			s.logger.Error("Failed to seed account", slog.String("username", input.Username), slog.Any("error", err))
			result.Failed++

			continue
		}

		s.logger.Info("Created account",
			slog.String("username", account.Username),
			slog.String("role", account.Role.String()),
		)
		result.Created++
	}

	return result, nil
}
