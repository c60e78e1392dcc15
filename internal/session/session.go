// Package session loads and persists the operator's DROH session: the
// backend token plus the user identity sent on every request. It only
// consumes what the auth service issued; it never authenticates itself.
package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bekendz87/droh-admin/internal/common"
)

// Session is the saved authentication state for the admin console.
type Session struct {
	SavedAt  time.Time `json:"saved_at"`
	Token    string    `json:"token"`
	UserID   string    `json:"user_id"`
	Username string    `json:"username"`
}

// SanitizeToken strips the stray quoting some auth frontends leave around
// the token (JSON-stringified values arrive as `"abc\"def"`).
func SanitizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	token = strings.ReplaceAll(token, `\`, "")
	token = strings.Trim(token, `"'`)
	return strings.TrimSpace(token)
}

// New builds a session from a raw token, pulling the user identity out of
// the token claims when they are present. Tokens without readable claims
// still work; the identity headers are simply left empty.
func New(rawToken string) (*Session, error) {
	token := SanitizeToken(rawToken)
	if token == "" {
		return nil, common.ErrNoSession
	}

	s := &Session{
		Token:   token,
		SavedAt: time.Now().UTC(),
	}
	s.UserID, s.Username = identityFromToken(token)

	return s, nil
}

// identityFromToken decodes the user id and username from the token's
// claims without verifying the signature. Verification belongs to the
// backend; the client only needs the identity for request headers.
func identityFromToken(token string) (string, string) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}

	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		slog.Debug("token carries no readable claims", "error", err)
		return "", ""
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		if sub, subErr := claims.GetSubject(); subErr == nil {
			userID = sub
		}
	}
	username, _ := claims["username"].(string)

	return userID, username
}

// Load reads the saved session from the state file.
func Load() (*Session, error) {
	stateFile, err := statePath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session path: %w", err)
	}

	data, err := os.ReadFile(stateFile) // #nosec G304 -- path is app-owned
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	if s.Token == "" {
		return nil, common.ErrNoSession
	}

	return &s, nil
}

// Save persists the session to the state file with owner-only permissions.
func (s *Session) Save() error {
	stateFile, err := statePath()
	if err != nil {
		return fmt.Errorf("failed to resolve session path: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(stateFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	slog.Info("Saved session",
		"user_id", s.UserID,
		"username", s.Username,
		"state_file", stateFile)

	return nil
}

// Clear removes the saved session, if any.
func Clear() error {
	stateFile, err := statePath()
	if err != nil {
		return err
	}
	if err := os.Remove(stateFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}

func statePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	// Use XDG_DATA_HOME if set, otherwise ~/.local/share
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(home, ".local", "share")
	}

	drohDir := filepath.Join(dataDir, "droh")
	if err := os.MkdirAll(drohDir, 0700); err != nil {
		return "", err
	}

	return filepath.Join(drohDir, "session.json"), nil
}
