// Package session keeps the client's single live Session and mirrors it to
// the local metadata store so that it survives restarts.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// Keys under which the session is persisted.
const (
	TokenKey = "auth_token"
	UserKey  = "auth_user"
)

var ErrEmptySession = errors.New("session has no token")

// Store holds the live session. Set and Clear write through to the metadata
// table inside a transaction, so the token and the user are always persisted
// together.
type Store struct {
	db  *sql.DB
	log logging.Logger

	mu      sync.RWMutex
	current models.Session
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log.With("component", "session")}
}

func (s *Store) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// Current returns the live session; it is empty when logged out.
func (s *Store) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Store) setCurrent(sess models.Session) {
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
}

// Restore loads the persisted session and makes it live. A missing token,
// a missing user or a user record that does not parse yields the empty
// session, and whatever was left on disk is removed. Only storage failures
// are returned as errors.
func (s *Store) Restore(ctx context.Context) (models.Session, error) {
	stored, err := s.repo(s.db).GetMany(ctx, TokenKey, UserKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}
	token, rawUser := stored[TokenKey], stored[UserKey]

	if len(token) == 0 || len(rawUser) == 0 {
		if len(token) != 0 || len(rawUser) != 0 {
			s.log.Warn(ctx, "incomplete persisted session, discarding")
		}
		return s.discard(ctx)
	}

	var user *models.User
	if err := json.Unmarshal(rawUser, &user); err != nil || user == nil {
		s.log.Warn(ctx, "malformed persisted user, discarding", "error", err)
		return s.discard(ctx)
	}

	sess := models.Session{Token: string(token), User: *user}
	s.setCurrent(sess)
	s.log.Debug(ctx, "session restored", "user_id", user.ID)
	return sess, nil
}

func (s *Store) discard(ctx context.Context) (models.Session, error) {
	if err := s.Clear(ctx); err != nil {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}
	return models.Session{}, nil
}

// Set persists sess and makes it the live session.
func (s *Store) Set(ctx context.Context, sess models.Session) error {
	if sess.IsEmpty() {
		return ErrEmptySession
	}

	rawUser, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, TokenKey, []byte(sess.Token)); err != nil {
			return err
		}
		return repo.Set(ctx, UserKey, rawUser)
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.setCurrent(sess)
	return nil
}

// Clear removes the persisted session and empties the live one. Clearing an
// already empty store is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repo(tx).Delete(ctx, TokenKey, UserKey)
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.setCurrent(models.Session{})
	return nil
}
