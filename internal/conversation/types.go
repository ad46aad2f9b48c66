package conversation

// RunStatus is the state of a remote run.
type RunStatus string

const (
	RunStatusQueued         RunStatus = "queued"
	RunStatusInProgress     RunStatus = "in_progress"
	RunStatusRequiresAction RunStatus = "requires_action"
	RunStatusCancelling     RunStatus = "cancelling"
	RunStatusCancelled      RunStatus = "cancelled"
	RunStatusFailed         RunStatus = "failed"
	RunStatusCompleted      RunStatus = "completed"
	RunStatusIncomplete     RunStatus = "incomplete"
	RunStatusExpired        RunStatus = "expired"
)

// IsTerminal reports whether polling should stop at this status.
func (s RunStatus) IsTerminal() bool {
	return s != RunStatusQueued && s != RunStatusInProgress
}

// Role identifies the author of a thread message.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "assistant"
)

// Message is one entry of a remote thread.
type Message struct {
	Role Role
	Text string
}

// Run is a remote computation generating a reply in a thread.
type Run struct {
	ID       string
	ThreadID string
	Status   RunStatus
}

// AgentDefinition is the remote assistant configuration runs execute against.
type AgentDefinition struct {
	Name         string
	Instructions string
	Model        string
}
