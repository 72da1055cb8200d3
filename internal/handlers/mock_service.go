package handlers

import (
	"context"
	"time"

	"school_admin/internal/models"
	"school_admin/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----
// Sessions is exercised for real (service.NewSessionService); only the
// store-backed services are mocked.

type mockAccounts struct {
	signUpID  int
	signUpErr error
	loginUser *models.User
	loginErr  error

	lastSignUpFullname string
	lastSignUpEmail    string
	lastSignUpPassword string
	lastLoginEmail     string
	lastLoginPassword  string
}

func (m *mockAccounts) SignUp(_ context.Context, fullname, email, password string) (int, error) {
	m.lastSignUpFullname = fullname
	m.lastSignUpEmail = email
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}

func (m *mockAccounts) Login(_ context.Context, email, password string) (*models.User, error) {
	m.lastLoginEmail = email
	m.lastLoginPassword = password
	return m.loginUser, m.loginErr
}

type mockPasswordReset struct {
	requestErr  error
	tokenValid  bool
	validateErr error
	resetErr    error

	lastRequestEmail  string
	lastValidateToken string
	lastResetToken    string
	lastResetPassword string
	lastResetConfirm  string
}

func (m *mockPasswordReset) RequestReset(_ context.Context, email string) error {
	m.lastRequestEmail = email
	return m.requestErr
}

func (m *mockPasswordReset) ValidateResetToken(_ context.Context, token string) (bool, error) {
	m.lastValidateToken = token
	return m.tokenValid, m.validateErr
}

func (m *mockPasswordReset) ResetPassword(_ context.Context, token, password, confirm string) error {
	m.lastResetToken = token
	m.lastResetPassword = password
	m.lastResetConfirm = confirm
	return m.resetErr
}

// ---- Shared Test Helpers ----

func newTestService(accounts *mockAccounts, reset *mockPasswordReset) *service.Service {
	return &service.Service{
		Accounts:      accounts,
		PasswordReset: reset,
		Sessions:      service.NewSessionService(time.Hour),
	}
}

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
