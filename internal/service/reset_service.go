package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"school_admin/internal/logger"
	"school_admin/internal/mailer"
	"school_admin/internal/repository"
)

const (
	resetTokenBytes = 32        // rendered as 64 lowercase hex chars
	resetTokenTTL   = time.Hour // token usable for 1 hour after issuance
)

// ErrResetTokenInvalid covers every way a token can fail to authorize a
// reset: never issued, already consumed, or expired.
var ErrResetTokenInvalid = errors.New("invalid or expired reset token")

// PasswordResetService issues and consumes single-use reset tokens.
// The reset link travels only through the mailer; callers must show the same
// acknowledgment whether or not the email matched a user.
type PasswordResetService struct {
	users   repository.Users
	mail    mailer.Mailer
	baseURL string
	log     *logger.Logger
	now     func() time.Time
}

func NewPasswordResetService(users repository.Users, mail mailer.Mailer, baseURL string, log *logger.Logger) *PasswordResetService {
	return &PasswordResetService{
		users:   users,
		mail:    mail,
		baseURL: baseURL,
		log:     log,
		now:     time.Now,
	}
}

var _ PasswordReset = (*PasswordResetService)(nil)

// RequestReset issues a fresh token for the address and hands the reset link
// to the mailer. An unknown email is not an error: the caller's response
// must not reveal whether the address exists, so the miss is only logged.
func (s *PasswordResetService) RequestReset(ctx context.Context, email string) error {
	if !validEmail(email) {
		verr := &ValidationError{}
		verr.add(MsgInvalidEmail)
		return verr
	}

	token, err := newResetToken()
	if err != nil {
		return err
	}
	expiry := s.now().Add(resetTokenTTL)

	matched, err := s.users.SetResetToken(ctx, email, token, expiry)
	if err != nil {
		return err
	}
	if !matched {
		if s.log != nil {
			s.log.Infow("password_reset_unknown_email", "email", email)
		}
		return nil
	}

	link := s.baseURL + "/reset-password?token=" + token
	if err := s.mail.SendPasswordReset(ctx, email, link); err != nil {
		// Delivery failure must not change the neutral acknowledgment.
		if s.log != nil {
			s.log.Errorw("password_reset_mail_failed", "email", email, "err", err)
		}
	}
	return nil
}

// ValidateResetToken reports whether the token currently authorizes a reset.
func (s *PasswordResetService) ValidateResetToken(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	u, err := s.users.GetByResetToken(ctx, token, s.now())
	if err != nil {
		return false, err
	}
	return u != nil, nil
}

// ResetPassword replaces the password for the user holding the token and
// retires the token in the same statement.
func (s *PasswordResetService) ResetPassword(ctx context.Context, token, password, confirm string) error {
	var verr ValidationError
	if len(password) < minPasswordLen {
		verr.add(MsgPasswordTooShort)
	}
	if password != confirm {
		verr.add(MsgPasswordMismatch)
	}
	if err := verr.orNil(); err != nil {
		return err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	consumed, err := s.users.ConsumeResetToken(ctx, token, hash, s.now())
	if err != nil {
		return err
	}
	if !consumed {
		return ErrResetTokenInvalid
	}
	return nil
}

// newResetToken draws 32 bytes of crypto randomness as lowercase hex.
func newResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
