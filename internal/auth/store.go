package auth

import (
	"database/sql"
	"fmt"
	"time"
)

// Session represents a stored FIO credential.
type Session struct {
	Username  string
	AuthToken string
	SavedAt   time.Time
}

// SessionStore handles credential persistence in SQLite. The map is a
// single-user desktop app, so at most one session is stored at a time.
type SessionStore struct {
	db *sql.DB
}

// NewSessionStore creates a store backed by the given SQL database.
func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

// Save stores the session, replacing any previously stored credential.
func (s *SessionStore) Save(sess *Session) error {
	if sess == nil {
		return fmt.Errorf("nil session")
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM auth_session`); err != nil {
		return err
	}
	_, err = tx.Exec(`
		INSERT INTO auth_session (username, auth_token, saved_at)
		VALUES (?, ?, ?)`,
		sess.Username, sess.AuthToken, time.Now().Unix())
	if err != nil {
		return err
	}
	return tx.Commit()
}

// Get returns the stored session, or nil if none.
func (s *SessionStore) Get() *Session {
	var sess Session
	var savedUnix int64
	err := s.db.QueryRow(`
		SELECT username, auth_token, saved_at
		FROM auth_session
		LIMIT 1`).
		Scan(&sess.Username, &sess.AuthToken, &savedUnix)
	if err != nil {
		return nil
	}
	sess.SavedAt = time.Unix(savedUnix, 0)
	return &sess
}

// Delete removes any stored session (logout).
func (s *SessionStore) Delete() {
	s.db.Exec(`DELETE FROM auth_session`)
}
