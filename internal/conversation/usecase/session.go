package usecase

import (
	"context"
	"sync"

	"psychoai/internal/conversation/repository"
)

// sessionStore maps user ids to remote thread ids. Threads are created lazily.
type sessionStore struct {
	remote  repository.Service
	mu      sync.RWMutex
	threads map[int64]string
}

func newSessionStore(remote repository.Service) *sessionStore {
	return &sessionStore{
		remote:  remote,
		threads: make(map[int64]string),
	}
}

// ResolveOrCreate returns the user's thread id, creating a remote thread on first use.
// Remote errors are returned unchanged. If two callers race on the first message of the
// same user, the first stored thread wins and the other is abandoned.
func (s *sessionStore) ResolveOrCreate(ctx context.Context, userID int64) (threadID string, created bool, err error) {
	s.mu.RLock()
	threadID, ok := s.threads[userID]
	s.mu.RUnlock()
	if ok {
		return threadID, false, nil
	}

	newID, err := s.remote.CreateThread(ctx)
	if err != nil {
		return "", false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.threads[userID]; ok {
		return existing, false, nil
	}
	s.threads[userID] = newID
	return newID, true, nil
}

// Reset removes the user's mapping. It reports whether one existed.
func (s *sessionStore) Reset(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.threads[userID]; !ok {
		return false
	}
	delete(s.threads, userID)
	return true
}

// Len returns the number of live sessions.
func (s *sessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.threads)
}
