package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"psychoai/internal/conversation"
	"psychoai/internal/conversation/repository"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct {
	mu     sync.Mutex
	errors []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func (m *mockLogger) errorCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.errors)
}

type fakeRun struct {
	threadID string
	next     int
	done     bool
}

// fakeRemote simulates the remote service. Every run walks through script; once the
// script is exhausted the last status repeats. Completed runs append reply (if set)
// as an agent message.
type fakeRemote struct {
	mu sync.Mutex

	script []conversation.RunStatus
	reply  string

	createAgentErr  error
	deleteAgentErr  error
	createThreadErr error
	appendErr       error
	startRunErr     error
	runStatusErr    error
	listErr         error

	agentSeq  int
	threadSeq int
	runSeq    int

	runs          map[string]*fakeRun
	messages      map[string][]conversation.Message
	statusCalls   map[string][]time.Time
	active        map[string]int
	maxActive     int
	deletedAgents []string
}

func newFakeRemote(script ...conversation.RunStatus) *fakeRemote {
	if len(script) == 0 {
		script = []conversation.RunStatus{conversation.RunStatusCompleted}
	}
	return &fakeRemote{
		script:      script,
		runs:        make(map[string]*fakeRun),
		messages:    make(map[string][]conversation.Message),
		statusCalls: make(map[string][]time.Time),
		active:      make(map[string]int),
	}
}

func (f *fakeRemote) CreateAgent(ctx context.Context, def conversation.AgentDefinition) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createAgentErr != nil {
		return "", f.createAgentErr
	}
	f.agentSeq++
	return fmt.Sprintf("asst_%d", f.agentSeq), nil
}

func (f *fakeRemote) DeleteAgent(ctx context.Context, agentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteAgentErr != nil {
		return f.deleteAgentErr
	}
	f.deletedAgents = append(f.deletedAgents, agentID)
	return nil
}

func (f *fakeRemote) CreateThread(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createThreadErr != nil {
		return "", f.createThreadErr
	}
	f.threadSeq++
	return fmt.Sprintf("t%d", f.threadSeq), nil
}

func (f *fakeRemote) AppendMessage(ctx context.Context, opt repository.AppendMessageOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appendErr != nil {
		return f.appendErr
	}
	f.prependLocked(opt.ThreadID, conversation.Message{Role: opt.Role, Text: opt.Text})
	return nil
}

func (f *fakeRemote) ListMessages(ctx context.Context, threadID string) ([]conversation.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]conversation.Message(nil), f.messages[threadID]...), nil
}

func (f *fakeRemote) StartRun(ctx context.Context, opt repository.StartRunOptions) (conversation.Run, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startRunErr != nil {
		return conversation.Run{}, f.startRunErr
	}
	f.runSeq++
	id := fmt.Sprintf("run_%d", f.runSeq)
	f.runs[id] = &fakeRun{threadID: opt.ThreadID}
	f.active[opt.ThreadID]++
	f.maxActive = max(f.maxActive, f.active[opt.ThreadID])
	return conversation.Run{ID: id, ThreadID: opt.ThreadID, Status: conversation.RunStatusQueued}, nil
}

func (f *fakeRemote) GetRunStatus(ctx context.Context, threadID, runID string) (conversation.RunStatus, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusCalls[runID] = append(f.statusCalls[runID], time.Now())
	if f.runStatusErr != nil {
		return "", f.runStatusErr
	}

	r, ok := f.runs[runID]
	if !ok {
		return "", fmt.Errorf("no run %s", runID)
	}
	status := f.script[min(r.next, len(f.script)-1)]
	r.next++
	if status.IsTerminal() && !r.done {
		r.done = true
		f.active[r.threadID]--
		if status == conversation.RunStatusCompleted && f.reply != "" {
			f.prependLocked(r.threadID, conversation.Message{Role: conversation.RoleAgent, Text: f.reply})
		}
	}
	return status, nil
}

func (f *fakeRemote) prependLocked(threadID string, m conversation.Message) {
	f.messages[threadID] = append([]conversation.Message{m}, f.messages[threadID]...)
}

func (f *fakeRemote) callTimes(runID string) []time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Time(nil), f.statusCalls[runID]...)
}

func (f *fakeRemote) agentsCreated() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.agentSeq
}

func newTestUseCase(remote *fakeRemote, interval, maxWait time.Duration) (*implUseCase, *mockLogger) {
	l := &mockLogger{}
	uc := New(l, remote, Config{
		Agent:        conversation.AgentDefinition{Name: "PsychoAI", Instructions: "test", Model: "gpt-4o-mini"},
		PollInterval: interval,
		MaxWait:      maxWait,
	})
	return uc, l
}
