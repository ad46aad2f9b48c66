package conversation

import "context"

// UseCase relays user messages to the remote assistant and returns its replies.
//
// Chat never fails for ordinary remote errors: those are logged and turned into a
// user-facing string. The only error it returns is a failure to create the agent
// definition, without which no conversation can proceed.
type UseCase interface {
	// CreateAgent creates the remote agent definition and caches its id.
	// Every call creates a new remote definition; call it once per process.
	CreateAgent(ctx context.Context) (string, error)

	// Chat sends text on behalf of userID and waits for the assistant's reply.
	Chat(ctx context.Context, userID int64, text string) (string, error)

	// Reset forgets the user's thread; the next Chat starts a fresh one.
	Reset(ctx context.Context, userID int64)

	// Cleanup deletes the agent definition, logging and swallowing failures.
	Cleanup(ctx context.Context)
}
