package handlers

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// State is the conversation state of one chat.
type State int

const (
	// StateIdle is the initial and terminal state; commands only.
	StateIdle State = iota
	// StateAwaitingBatch means /input was issued and the next text message
	// is treated as a transaction batch.
	StateAwaitingBatch
)

type session struct {
	State     State
	ExpiresAt time.Time
}

// Sessions tracks per-chat conversation state. A chat with no entry is
// idle. AwaitingBatch entries expire after the configured timeout so a
// forgotten /input does not capture an unrelated message days later.
type Sessions struct {
	mu      sync.Mutex
	active  map[int64]session
	timeout time.Duration
	logger  *slog.Logger
}

func NewSessions(timeout time.Duration, logger *slog.Logger) *Sessions {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sessions{
		active:  make(map[int64]session),
		timeout: timeout,
		logger:  logger,
	}
}

// AwaitBatch transitions a chat to the collecting state.
func (s *Sessions) AwaitBatch(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[chatID] = session{
		State:     StateAwaitingBatch,
		ExpiresAt: time.Now().Add(s.timeout),
	}
}

// State returns the chat's current state, treating an expired entry as
// idle.
func (s *Sessions) State(chatID int64) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.active[chatID]
	if !ok {
		return StateIdle
	}
	if time.Now().After(sess.ExpiresAt) {
		delete(s.active, chatID)
		return StateIdle
	}
	return sess.State
}

// TakeBatch atomically claims a pending batch: if the chat is awaiting
// one and the entry has not expired, the chat returns to idle and the
// caller owns the batch. Updates are handled on separate goroutines, so
// two messages racing on the same chat must not both be ingested.
func (s *Sessions) TakeBatch(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.active[chatID]
	if !ok {
		return false
	}
	delete(s.active, chatID)
	if time.Now().After(sess.ExpiresAt) {
		return false
	}
	return sess.State == StateAwaitingBatch
}

// Reset returns a chat to idle.
func (s *Sessions) Reset(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, chatID)
}

// Run sweeps expired sessions until the context is canceled.
func (s *Sessions) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Sessions) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for chatID, sess := range s.active {
		if now.After(sess.ExpiresAt) {
			delete(s.active, chatID)
			s.logger.Debug("expired batch session", "chat_id", chatID)
		}
	}
}
