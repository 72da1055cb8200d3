package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"school_admin/internal/models"
)

// ErrDuplicateEmail reports a violated users.email UNIQUE constraint.
// The service layer maps it to the "already registered" business error.
var ErrDuplicateEmail = errors.New("email already registered")

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL = `INSERT INTO users (fullname, email, password_hash) VALUES (?, ?, ?)`

	selectUserByEmailSQL = `SELECT id, fullname, email, password_hash, reset_token, reset_token_expiry, last_login
FROM users WHERE email = ?`

	existsEmailSQL = `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`

	updateLastLoginSQL = `UPDATE users SET last_login = ? WHERE id = ?`

	setResetTokenSQL = `UPDATE users SET reset_token = ?, reset_token_expiry = ? WHERE email = ?`

	selectUserByResetTokenSQL = `SELECT id, fullname, email, password_hash, reset_token, reset_token_expiry, last_login
FROM users WHERE reset_token = ? AND reset_token_expiry > ?`

	// Expiry is re-checked inside the consuming statement so an expired or
	// already-consumed token can never authorize a second reset.
	consumeResetTokenSQL = `UPDATE users SET password_hash = ?, reset_token = NULL, reset_token_expiry = NULL
WHERE reset_token = ? AND reset_token_expiry > ?`
)

// Create inserts a new user and returns its ID. A uniqueness conflict on the
// email column is reported as ErrDuplicateEmail.
func (r *UserRepository) Create(ctx context.Context, fullname, email, passwordHash string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, fullname, email, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("insert user %q: %w", email, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", email, err)
	}
	return int(lastID), nil
}

// GetByEmail fetches a user by exact email match. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByEmailSQL, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", email, err)
	}
	return u, nil
}

// EmailExists reports whether any user row already has this email.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, existsEmailSQL, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check email %q: %w", email, err)
	}
	return exists, nil
}

// UpdateLastLogin stamps the row after a successful authentication.
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int, at time.Time) error {
	if _, err := r.db.ExecContext(ctx, updateLastLoginSQL, at.UTC(), id); err != nil {
		return fmt.Errorf("update last_login for user %d: %w", id, err)
	}
	return nil
}

// SetResetToken stores a reset token and its expiry on the matching row.
func (r *UserRepository) SetResetToken(ctx context.Context, email, token string, expiry time.Time) (bool, error) {
	// Timestamps are persisted in UTC so the expiry comparison is
	// insensitive to the server's local offset.
	res, err := r.db.ExecContext(ctx, setResetTokenSQL, token, expiry.UTC(), email)
	if err != nil {
		return false, fmt.Errorf("set reset token for %q: %w", email, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for reset token of %q: %w", email, err)
	}
	return n > 0, nil
}

// GetByResetToken fetches the user holding an unexpired matching token.
// Returns (nil, nil) when no such row exists.
func (r *UserRepository) GetByResetToken(ctx context.Context, token string, now time.Time) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByResetTokenSQL, token, now.UTC()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user by reset token: %w", err)
	}
	return u, nil
}

// ConsumeResetToken atomically replaces the password and clears the token.
func (r *UserRepository) ConsumeResetToken(ctx context.Context, token, passwordHash string, now time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, consumeResetTokenSQL, passwordHash, token, now.UTC())
	if err != nil {
		return false, fmt.Errorf("consume reset token: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for reset token consumption: %w", err)
	}
	return n > 0, nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var (
		u           models.User
		resetToken  sql.NullString
		tokenExpiry sql.NullTime
		lastLogin   sql.NullTime
	)
	err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &resetToken, &tokenExpiry, &lastLogin)
	if err != nil {
		return nil, err
	}
	if resetToken.Valid {
		u.ResetToken = &resetToken.String
	}
	if tokenExpiry.Valid {
		u.ResetTokenExpiry = &tokenExpiry.Time
	}
	if lastLogin.Valid {
		u.LastLogin = &lastLogin.Time
	}
	return &u, nil
}

// isUniqueViolation matches the sqlite driver's constraint error text; the
// driver does not export a stable typed error for it.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
