package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"school_admin/internal/models"
	"school_admin/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Domain errors for account flows.
var (
	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password; the two must stay indistinguishable to the client.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AccountService handles signup and login.
type AccountService struct {
	users repository.Users
}

func NewAccountService(users repository.Users) *AccountService {
	return &AccountService{users: users}
}

var _ Accounts = (*AccountService)(nil)

// SignUp validates the submission, hashes the password and creates the user.
// All validation violations are collected into one *ValidationError; the
// duplicate-email check runs regardless of other failures.
func (s *AccountService) SignUp(ctx context.Context, fullname, email, password string) (int, error) {
	var verr ValidationError

	fullname = strings.TrimSpace(fullname)
	if fullname == "" {
		verr.add(MsgFullnameRequired)
	}
	if !validEmail(email) {
		verr.add(MsgInvalidEmail)
	}
	taken, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("check existing email: %w", err)
	}
	if taken {
		verr.add(MsgEmailTaken)
	}
	if len(password) < minPasswordLen {
		verr.add(MsgPasswordTooShort)
	}
	if err := verr.orNil(); err != nil {
		return 0, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return 0, err
	}

	id, err := s.users.Create(ctx, fullname, email, hash)
	if err != nil {
		// The UNIQUE constraint backstops the race between the existence
		// check and the insert; report the loser the same business error.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			verr.add(MsgEmailTaken)
			return 0, &verr
		}
		return 0, err
	}
	return id, nil
}

// Login verifies credentials and stamps last_login on success.
func (s *AccountService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if !validEmail(email) {
		verr := &ValidationError{}
		verr.add(MsgInvalidEmail)
		return nil, verr
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.users.UpdateLastLogin(ctx, u.ID, time.Now()); err != nil {
		return nil, err
	}
	return u, nil
}

// helper: hash password with bcrypt's default work factor
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
