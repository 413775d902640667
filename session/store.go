// Package session keeps admin login sessions in the database so they survive restarts.
package session

import (
	"context"
	"log/slog"
	"suredoor/models"
	"time"

	"github.com/google/uuid"
)

const (
	CookieName = "session_id"
	DefaultTTL = 12 * time.Hour

	cleanupInterval = time.Hour
)

// Repository is the persistence the store needs
type Repository interface {
	CreateSession(s *models.Session) error
	GetSession(id string, now time.Time) (*models.Session, error)
	TouchSession(id string, now time.Time) error
	DeleteSession(id string) error
	DeleteSessionsForEmail(email string) error
	DeleteExpiredSessions(now time.Time) (int64, error)
}

type Store struct {
	repo Repository
	ttl  time.Duration
	now  func() time.Time
}

func NewStore(repo Repository, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		repo: repo,
		ttl:  ttl,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}

func (s *Store) Create(email string) (*models.Session, error) {
	now := s.now()
	sess := &models.Session{
		ID:         uuid.New().String(),
		Email:      email,
		ExpiresAt:  now.Add(s.ttl),
		CreatedAt:  now,
		LastUsedAt: now,
	}

	if err := s.repo.CreateSession(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get returns nil, nil for unknown or expired sessions
func (s *Store) Get(sessionID string) (*models.Session, error) {
	if sessionID == "" {
		return nil, nil
	}
	return s.repo.GetSession(sessionID, s.now())
}

func (s *Store) Touch(sessionID string) error {
	return s.repo.TouchSession(sessionID, s.now())
}

func (s *Store) Delete(sessionID string) error {
	return s.repo.DeleteSession(sessionID)
}

// DeleteAllFor ends every session belonging to email
func (s *Store) DeleteAllFor(email string) error {
	return s.repo.DeleteSessionsForEmail(email)
}

func (s *Store) CleanupExpired() (int64, error) {
	return s.repo.DeleteExpiredSessions(s.now())
}

// StartCleanupRoutine purges expired sessions hourly until ctx is done
func (s *Store) StartCleanupRoutine(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := s.CleanupExpired()
				if err != nil {
					slog.Error("session cleanup failed", "error", err)
					continue
				}
				if n > 0 {
					slog.Info("purged expired sessions", "count", n)
				}
			}
		}
	}()
}
