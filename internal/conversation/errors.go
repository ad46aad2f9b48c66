package conversation

import "errors"

var (
	// ErrAgentNotCreated means the remote agent definition could not be created.
	ErrAgentNotCreated = errors.New("agent definition not created")

	// ErrRunTimeout means a run did not reach a terminal status within the allowed wait.
	ErrRunTimeout = errors.New("run did not finish in time")

	// ErrEmptyMessage is returned by callers that reject blank input before chatting.
	ErrEmptyMessage = errors.New("message text is empty")
)
