package service

import (
	"context"
	"time"

	"school_admin/internal/logger"
	"school_admin/internal/mailer"
	"school_admin/internal/models"
	"school_admin/internal/repository"
)

// Accounts covers signup and login against the credential store.
type Accounts interface {
	SignUp(ctx context.Context, fullname, email, password string) (int, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
}

// PasswordReset covers the forgot-password / reset-password flow.
type PasswordReset interface {
	RequestReset(ctx context.Context, email string) error
	ValidateResetToken(ctx context.Context, token string) (bool, error)
	ResetPassword(ctx context.Context, token, password, confirm string) error
}

// Sessions owns the create/lookup/invalidate lifecycle of server-side
// sessions; handlers never touch session state directly.
type Sessions interface {
	Create(userID int, fullname string) *models.Session
	Get(token string) (*models.Session, bool)
	Destroy(token string)
	// Run sweeps expired sessions until ctx is cancelled. Started from
	// main() as a background goroutine.
	Run(ctx context.Context, tick time.Duration)
}

type Service struct {
	Accounts
	PasswordReset
	Sessions
}

// Options carries the config-derived knobs the services need.
type Options struct {
	BaseURL    string        // public origin for reset links, e.g. https://school.example.com
	SessionTTL time.Duration // zero falls back to defaultSessionTTL
}

// NewService wires the repository layer and the mailer into concrete services.
func NewService(repos *repository.Repository, mail mailer.Mailer, opts Options, log *logger.Logger) *Service {
	return &Service{
		Accounts:      NewAccountService(repos.Users),
		PasswordReset: NewPasswordResetService(repos.Users, mail, opts.BaseURL, log),
		Sessions:      NewSessionService(opts.SessionTTL),
	}
}
