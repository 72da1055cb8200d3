package models

import "time"

// Session associates a browser with an authenticated identity across
// requests. Server-held; the client only ever sees the opaque token.
type Session struct {
	Token     string    `json:"token"`
	UserID    int       `json:"user_id"`
	FullName  string    `json:"fullname"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
