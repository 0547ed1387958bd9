package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionsLifecycle(t *testing.T) {
	s := NewSessions(time.Minute, nil)

	const chatID = int64(100)
	assert.Equal(t, StateIdle, s.State(chatID))

	s.AwaitBatch(chatID)
	assert.Equal(t, StateAwaitingBatch, s.State(chatID))

	// Other chats are unaffected.
	assert.Equal(t, StateIdle, s.State(int64(200)))

	s.Reset(chatID)
	assert.Equal(t, StateIdle, s.State(chatID))
}

func TestSessionsExpireOnAccess(t *testing.T) {
	s := NewSessions(-time.Second, nil)

	const chatID = int64(100)
	s.AwaitBatch(chatID)
	assert.Equal(t, StateIdle, s.State(chatID))
}

func TestSessionsTakeBatchClaimsOnce(t *testing.T) {
	s := NewSessions(time.Minute, nil)

	const chatID = int64(100)
	assert.False(t, s.TakeBatch(chatID), "idle chat has no batch to claim")

	s.AwaitBatch(chatID)
	assert.True(t, s.TakeBatch(chatID))
	// A second message racing on the same chat must not also be ingested.
	assert.False(t, s.TakeBatch(chatID))
	assert.Equal(t, StateIdle, s.State(chatID))
}

func TestSessionsTakeBatchConcurrent(t *testing.T) {
	s := NewSessions(time.Minute, nil)

	const chatID = int64(100)
	s.AwaitBatch(chatID)

	const racers = 8
	results := make(chan bool, racers)
	for i := 0; i < racers; i++ {
		go func() { results <- s.TakeBatch(chatID) }()
	}

	claimed := 0
	for i := 0; i < racers; i++ {
		if <-results {
			claimed++
		}
	}
	assert.Equal(t, 1, claimed)
}

func TestSessionsTakeBatchExpired(t *testing.T) {
	s := NewSessions(-time.Second, nil)

	const chatID = int64(100)
	s.AwaitBatch(chatID)
	assert.False(t, s.TakeBatch(chatID))
}

func TestSessionsSweep(t *testing.T) {
	s := NewSessions(-time.Second, nil)

	s.AwaitBatch(1)
	s.AwaitBatch(2)
	s.sweep()

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Empty(t, s.active)
}
