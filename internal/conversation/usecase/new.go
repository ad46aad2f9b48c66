package usecase

import (
	"sync"
	"time"

	"psychoai/internal/conversation"
	"psychoai/internal/conversation/repository"
	pkgLog "psychoai/pkg/log"
)

// Config tunes the use case.
type Config struct {
	Agent conversation.AgentDefinition

	// PollInterval is the fixed delay between run status checks.
	PollInterval time.Duration
	// MaxWait bounds how long a single run is polled. Zero or negative disables the bound.
	MaxWait time.Duration
}

type implUseCase struct {
	l      pkgLog.Logger
	remote repository.Service
	agent  conversation.AgentDefinition

	pollInterval time.Duration
	maxWait      time.Duration

	sessions *sessionStore
	locks    *keyedMutex

	agentMu sync.Mutex
	agentID string
}

// New creates a new conversation UseCase instance.
func New(l pkgLog.Logger, remote repository.Service, cfg Config) *implUseCase {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	return &implUseCase{
		l:            l,
		remote:       remote,
		agent:        cfg.Agent,
		pollInterval: cfg.PollInterval,
		maxWait:      cfg.MaxWait,
		sessions:     newSessionStore(remote),
		locks:        newKeyedMutex(),
	}
}
