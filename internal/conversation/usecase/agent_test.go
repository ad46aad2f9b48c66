package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psychoai/internal/conversation"
)

func TestCreateAgent(t *testing.T) {
	remote := newFakeRemote()
	uc, _ := newTestUseCase(remote, time.Millisecond, time.Second)
	ctx := context.Background()

	id, err := uc.CreateAgent(ctx)
	require.NoError(t, err)
	assert.Equal(t, "asst_1", id)

	again, err := uc.ensureAgent(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, again)

	// Each explicit call creates an independent remote definition.
	second, err := uc.CreateAgent(ctx)
	require.NoError(t, err)
	assert.Equal(t, "asst_2", second)
}

func TestCreateAgent_Failure(t *testing.T) {
	remote := newFakeRemote()
	remote.createAgentErr = errors.New("401")
	uc, _ := newTestUseCase(remote, time.Millisecond, time.Second)

	_, err := uc.CreateAgent(context.Background())
	assert.ErrorIs(t, err, conversation.ErrAgentNotCreated)
	assert.Empty(t, uc.agentID)
}

func TestCleanup(t *testing.T) {
	t.Run("Deletes created agent", func(t *testing.T) {
		remote := newFakeRemote()
		uc, _ := newTestUseCase(remote, time.Millisecond, time.Second)
		ctx := context.Background()

		_, err := uc.CreateAgent(ctx)
		require.NoError(t, err)
		uc.Cleanup(ctx)
		uc.Cleanup(ctx)

		assert.Equal(t, []string{"asst_1"}, remote.deletedAgents)
	})

	t.Run("No agent", func(t *testing.T) {
		remote := newFakeRemote()
		uc, _ := newTestUseCase(remote, time.Millisecond, time.Second)

		uc.Cleanup(context.Background())
		assert.Empty(t, remote.deletedAgents)
	})

	t.Run("Failure is swallowed", func(t *testing.T) {
		remote := newFakeRemote()
		remote.deleteAgentErr = errors.New("network down")
		uc, l := newTestUseCase(remote, time.Millisecond, time.Second)
		ctx := context.Background()

		_, err := uc.CreateAgent(ctx)
		require.NoError(t, err)
		assert.NotPanics(t, func() { uc.Cleanup(ctx) })
		assert.Equal(t, 1, l.errorCount())
	})
}
