package repository

import (
	"context"
	"fmt"

	"bus-booking/internal/data/entity"
	"bus-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

type userRepository struct {
	db  *database.Client
	log *zap.Logger
}

func NewUserRepository(db *database.Client, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (user_id, name, email, phone, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := ur.db.WithConn(ctx, func(ctx context.Context, q database.Querier) error {
		return q.QueryRow(ctx, query,
			user.UserID,
			user.Name,
			user.Email,
			user.Phone,
			user.PasswordHash,
			user.CreatedAt,
			user.UpdatedAt,
		).Scan(&user.ID)
	})

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, user_id, name, email, phone, password, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user entity.User
	var found bool

	err := ur.db.WithConn(ctx, func(ctx context.Context, q database.Querier) error {
		err := q.QueryRow(ctx, query, userID).Scan(
			&user.ID,
			&user.UserID,
			&user.Name,
			&user.Email,
			&user.Phone,
			&user.PasswordHash,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err == pgx.ErrNoRows {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})

	if err != nil {
		ur.log.Error("Failed to find user by id",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find user by id %s: %w", userID.String(), err)
	}
	if !found {
		return nil, nil
	}

	return &user, nil
}

// FindByEmail looks a user up case-insensitively; emails are stored
// lowercased but the comparison does not rely on it.
func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, user_id, name, email, phone, password, created_at, updated_at
		FROM users
		WHERE lower(email) = lower($1)
	`

	var user entity.User
	var found bool

	err := ur.db.WithConn(ctx, func(ctx context.Context, q database.Querier) error {
		err := q.QueryRow(ctx, query, email).Scan(
			&user.ID,
			&user.UserID,
			&user.Name,
			&user.Email,
			&user.Phone,
			&user.PasswordHash,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err == pgx.ErrNoRows {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})

	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}
	if !found {
		return nil, nil
	}

	return &user, nil
}
