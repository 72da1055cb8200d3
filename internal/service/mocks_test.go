package service

import (
	"context"
	"time"

	"school_admin/internal/models"
)

// mockUsers is a lightweight in-test mock for repository.Users.
// Unset function fields make the corresponding call fail loudly via nil panic,
// which is what we want: each test declares exactly the calls it expects.
type mockUsers struct {
	CreateFn            func(fullname, email, hash string) (int, error)
	GetByEmailFn        func(email string) (*models.User, error)
	EmailExistsFn       func(email string) (bool, error)
	UpdateLastLoginFn   func(id int, at time.Time) error
	SetResetTokenFn     func(email, token string, expiry time.Time) (bool, error)
	GetByResetTokenFn   func(token string, now time.Time) (*models.User, error)
	ConsumeResetTokenFn func(token, hash string, now time.Time) (bool, error)

	createCalls []struct {
		fullname string
		email    string
		hash     string
	}
	lastLoginCalls []int
	setTokenCalls  []struct {
		email  string
		token  string
		expiry time.Time
	}
	consumeCalls []string
}

func (m *mockUsers) Create(_ context.Context, fullname, email, hash string) (int, error) {
	m.createCalls = append(m.createCalls, struct {
		fullname string
		email    string
		hash     string
	}{fullname, email, hash})
	return m.CreateFn(fullname, email, hash)
}

func (m *mockUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return m.GetByEmailFn(email)
}

func (m *mockUsers) EmailExists(_ context.Context, email string) (bool, error) {
	return m.EmailExistsFn(email)
}

func (m *mockUsers) UpdateLastLogin(_ context.Context, id int, at time.Time) error {
	m.lastLoginCalls = append(m.lastLoginCalls, id)
	return m.UpdateLastLoginFn(id, at)
}

func (m *mockUsers) SetResetToken(_ context.Context, email, token string, expiry time.Time) (bool, error) {
	m.setTokenCalls = append(m.setTokenCalls, struct {
		email  string
		token  string
		expiry time.Time
	}{email, token, expiry})
	return m.SetResetTokenFn(email, token, expiry)
}

func (m *mockUsers) GetByResetToken(_ context.Context, token string, now time.Time) (*models.User, error) {
	return m.GetByResetTokenFn(token, now)
}

func (m *mockUsers) ConsumeResetToken(_ context.Context, token, hash string, now time.Time) (bool, error) {
	m.consumeCalls = append(m.consumeCalls, token)
	return m.ConsumeResetTokenFn(token, hash, now)
}

// mockMailer records every delivery.
type mockMailer struct {
	err   error
	sends []struct {
		to   string
		link string
	}
}

func (m *mockMailer) SendPasswordReset(_ context.Context, to, link string) error {
	m.sends = append(m.sends, struct {
		to   string
		link string
	}{to, link})
	return m.err
}
