// Package session holds the authenticated user context. It is built once at
// startup and handed to every collaborator that talks to the backend.
package session

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoUser = errors.New("session has no user id")

// Session is the bearer token plus the user it belongs to
type Session struct {
	token  string
	userID string
}

// New builds a session from a bearer token. The user id is the token's "sub" claim;
// the signature is not checked here since the backend verifies every request.
// fallbackUserID is used when the token is empty (in-memory backend mode).
func New(token, fallbackUserID string) (*Session, error) {
	if token == "" {
		if fallbackUserID == "" {
			return nil, ErrNoUser
		}
		return &Session{userID: fallbackUserID}, nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("session: parse token: %w", err)
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		if fallbackUserID == "" {
			return nil, ErrNoUser
		}
		sub = fallbackUserID
	}
	return &Session{token: token, userID: sub}, nil
}

// UserID returns the authenticated user id
func (s *Session) UserID() string { return s.userID }

// Token returns the raw bearer token, possibly empty
func (s *Session) Token() string { return s.token }

// Header returns the headers that authenticate a backend or push request
func (s *Session) Header() http.Header {
	h := http.Header{}
	if s.token != "" {
		h.Set("Authorization", "Bearer "+s.token)
	}
	return h
}

// Authorize stamps the session's credentials onto req
func (s *Session) Authorize(req *http.Request) {
	for k, v := range s.Header() {
		req.Header[k] = v
	}
}
