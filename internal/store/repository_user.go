package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the account and returns it with UserID and CreatedAt
// filled. A taken login yields [ErrLoginAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User, passwordHash string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert(models.User{}.TableName()).
		Columns("login", "password_hash", "name").
		Values(user.Login, passwordHash, user.Name).
		Suffix("RETURNING user_id, created_at").
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if r.db.errorClassificator.Classify(err) == UniqueViolation {
			return models.User{}, ErrLoginAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	user.Password = ""
	return user, nil
}

// FindUserByLogin returns the account and its password hash.
// An unknown login yields [ErrNoUserWasFound].
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, string, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select("user_id", "login", "name", "password_hash", "created_at").
		From(models.User{}.TableName()).
		Where(sq.Eq{"login": login}).
		ToSql()
	if err != nil {
		return models.User{}, "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		user         models.User
		passwordHash string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID, &user.Login, &user.Name, &passwordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, "", ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("error selecting user")
		return models.User{}, "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, passwordHash, nil
}
