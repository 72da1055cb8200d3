package repository

import (
	"context"
	"database/sql"
	"time"

	"school_admin/internal/models"
)

// Users is the credential store: the system of record for identity and
// password-reset state.
type Users interface {
	Create(ctx context.Context, fullname, email, passwordHash string) (int, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, id int, at time.Time) error

	// SetResetToken stores a fresh token+expiry on the row matching email.
	// Returns false when no row matched.
	SetResetToken(ctx context.Context, email, token string, expiry time.Time) (bool, error)
	// GetByResetToken matches only rows whose token equals the argument and
	// whose expiry is strictly after now.
	GetByResetToken(ctx context.Context, token string, now time.Time) (*models.User, error)
	// ConsumeResetToken sets the new password hash and clears the token in a
	// single conditional statement; false means the token did not match an
	// unexpired row (already consumed, expired, or never issued).
	ConsumeResetToken(ctx context.Context, token, passwordHash string, now time.Time) (bool, error)
}

type Repository struct {
	Users Users
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(db),
	}
}
