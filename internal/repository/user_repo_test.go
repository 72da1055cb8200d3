package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"school_admin/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewUserRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func userColumns() []string {
	return []string{"id", "fullname", "email", "password_hash", "reset_token", "reset_token_expiry", "last_login"}
}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name           string
		mockExpect     func(sqlmock.Sqlmock)
		wantID         int
		wantErr        bool
		wantDuplicate  bool
		errContainsStr string
	}{
		{
			name: "success",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("Jane Doe", "jane@example.com", "h123").
					WillReturnResult(sqlmock.NewResult(42, 1))
			},
			wantID: 42,
		},
		{
			name: "unique constraint maps to ErrDuplicateEmail",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("Jane Doe", "jane@example.com", "h123").
					WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: users.email (2067)"))
			},
			wantErr:       true,
			wantDuplicate: true,
		},
		{
			name: "exec error",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("Jane Doe", "jane@example.com", "h123").
					WillReturnError(errors.New("db exec failed"))
			},
			wantErr:        true,
			errContainsStr: "insert user",
		},
		{
			name: "last insert id error",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("Jane Doe", "jane@example.com", "h123").
					WillReturnResult(sqlmock.NewErrorResult(errors.New("no last id")))
			},
			wantErr:        true,
			errContainsStr: "get last insert id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			id, err := repo.Create(context.Background(), "Jane Doe", "jane@example.com", "h123")

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.wantDuplicate && !errors.Is(err, ErrDuplicateEmail) {
					t.Fatalf("expected ErrDuplicateEmail, got %v", err)
				}
				if tt.errContainsStr != "" && !strings.Contains(err.Error(), tt.errContainsStr) {
					t.Fatalf("expected error to contain %q, got %q", tt.errContainsStr, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.wantID {
				t.Fatalf("unexpected id: want %d, got %d", tt.wantID, id)
			}
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	lastLogin := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		email      string
		mockExpect func(sqlmock.Sqlmock)
		wantUser   *models.User
		wantErr    bool
	}{
		{
			name:  "found with nullable fields empty",
			email: "jane@example.com",
			mockExpect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(userColumns()).
					AddRow(7, "Jane Doe", "jane@example.com", "h123", nil, nil, nil)
				m.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
					WithArgs("jane@example.com").
					WillReturnRows(rows)
			},
			wantUser: &models.User{ID: 7, FullName: "Jane Doe", Email: "jane@example.com", PasswordHash: "h123"},
		},
		{
			name:  "found with last_login set",
			email: "jane@example.com",
			mockExpect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(userColumns()).
					AddRow(7, "Jane Doe", "jane@example.com", "h123", nil, nil, lastLogin)
				m.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
					WithArgs("jane@example.com").
					WillReturnRows(rows)
			},
			wantUser: &models.User{ID: 7, FullName: "Jane Doe", Email: "jane@example.com", PasswordHash: "h123", LastLogin: &lastLogin},
		},
		{
			name:  "not found (ErrNoRows)",
			email: "missing@example.com",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
					WithArgs("missing@example.com").
					WillReturnError(sql.ErrNoRows)
			},
			wantUser: nil,
		},
		{
			name:  "query error",
			email: "jane@example.com",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
					WithArgs("jane@example.com").
					WillReturnError(errors.New("db query failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			u, err := repo.GetByEmail(context.Background(), tt.email)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantUser == nil {
				if u != nil {
					t.Fatalf("expected nil user, got %+v", u)
				}
				return
			}
			if u == nil {
				t.Fatalf("expected user, got nil")
			}
			if u.ID != tt.wantUser.ID || u.FullName != tt.wantUser.FullName ||
				u.Email != tt.wantUser.Email || u.PasswordHash != tt.wantUser.PasswordHash {
				t.Fatalf("unexpected user: want %+v, got %+v", tt.wantUser, u)
			}
			if (u.LastLogin == nil) != (tt.wantUser.LastLogin == nil) {
				t.Fatalf("last_login mismatch: want %v, got %v", tt.wantUser.LastLogin, u.LastLogin)
			}
			if u.LastLogin != nil && !u.LastLogin.Equal(*tt.wantUser.LastLogin) {
				t.Fatalf("last_login: want %v, got %v", tt.wantUser.LastLogin, u.LastLogin)
			}
		})
	}
}

func TestUserRepository_EmailExists(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(existsEmailSQL)).
		WithArgs("jane@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.EmailExists(context.Background(), "jane@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Fatalf("expected exists=true")
	}
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	at := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(updateLastLoginSQL)).
		WithArgs(at, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateLastLogin(context.Background(), 7, at); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUserRepository_SetResetToken(t *testing.T) {
	expiry := time.Date(2026, 8, 28, 13, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		rowsChanged int64
		wantMatched bool
	}{
		{name: "matched", rowsChanged: 1, wantMatched: true},
		{name: "unknown email", rowsChanged: 0, wantMatched: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockRepo(t)
			defer cleanup()

			mock.ExpectExec(regexp.QuoteMeta(setResetTokenSQL)).
				WithArgs("tok", expiry, "jane@example.com").
				WillReturnResult(sqlmock.NewResult(0, tt.rowsChanged))

			matched, err := repo.SetResetToken(context.Background(), "jane@example.com", "tok", expiry)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if matched != tt.wantMatched {
				t.Fatalf("matched: want %v, got %v", tt.wantMatched, matched)
			}
		})
	}
}

func TestUserRepository_GetByResetToken(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	expiry := now.Add(time.Hour)

	t.Run("unexpired match", func(t *testing.T) {
		repo, mock, cleanup := newMockRepo(t)
		defer cleanup()

		rows := sqlmock.NewRows(userColumns()).
			AddRow(7, "Jane Doe", "jane@example.com", "h123", "tok", expiry, nil)
		mock.ExpectQuery(regexp.QuoteMeta(selectUserByResetTokenSQL)).
			WithArgs("tok", now).
			WillReturnRows(rows)

		u, err := repo.GetByResetToken(context.Background(), "tok", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u == nil || u.ID != 7 || u.ResetToken == nil || *u.ResetToken != "tok" {
			t.Fatalf("unexpected user: %+v", u)
		}
	})

	t.Run("no unexpired match", func(t *testing.T) {
		repo, mock, cleanup := newMockRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectUserByResetTokenSQL)).
			WithArgs("tok", now).
			WillReturnError(sql.ErrNoRows)

		u, err := repo.GetByResetToken(context.Background(), "tok", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u != nil {
			t.Fatalf("expected nil user, got %+v", u)
		}
	})
}

func TestUserRepository_ConsumeResetToken(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		rowsChanged  int64
		wantConsumed bool
	}{
		{name: "consumed", rowsChanged: 1, wantConsumed: true},
		{name: "expired or already consumed", rowsChanged: 0, wantConsumed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockRepo(t)
			defer cleanup()

			mock.ExpectExec(regexp.QuoteMeta(consumeResetTokenSQL)).
				WithArgs("newhash", "tok", now).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsChanged))

			consumed, err := repo.ConsumeResetToken(context.Background(), "tok", "newhash", now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if consumed != tt.wantConsumed {
				t.Fatalf("consumed: want %v, got %v", tt.wantConsumed, consumed)
			}
		})
	}
}
