package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/puptrack/puptrack/internal/common"
	"github.com/puptrack/puptrack/internal/dbx"
	"github.com/puptrack/puptrack/internal/server/models"
)

// pgUniqueViolation is the SQLSTATE raised when the users_email_key index
// rejects a duplicate email.
const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (name, address, phone, email, password_hash)
         VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		nullIfEmpty(user.Name), nullIfEmpty(user.Address), nullIfEmpty(user.Phone),
		nullIfEmpty(user.Email), nullIfEmpty(user.PasswordHash)).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, name, address, phone, email, password_hash, created_at FROM users
		 WHERE email = $1
		 `

	return r.getOne(ctx, query, email)
}

func (r *PostgresRepository) GetUserByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	query :=
		`SELECT id, name, address, phone, email, password_hash, created_at FROM users
		 WHERE email = $1 OR phone = $1
		 `

	return r.getOne(ctx, query, identifier)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	var name, address, phone, email, passwordHash sql.NullString

	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &name, &address, &phone, &email, &passwordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.Name = name.String
	user.Address = address.String
	user.Phone = phone.String
	user.Email = email.String
	user.PasswordHash = passwordHash.String

	return user, nil
}

// nullIfEmpty stores empty optional fields as NULL so the email unique index
// does not collide on phone-only accounts.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
