package usecase

import "time"

// Log prefixes
const (
	LogPrefixChat            = "internal.conversation.usecase.Chat"
	LogPrefixReset           = "internal.conversation.usecase.Reset"
	LogPrefixCreateAgent     = "internal.conversation.usecase.CreateAgent"
	LogPrefixCleanup         = "internal.conversation.usecase.Cleanup"
	LogPrefixAwaitCompletion = "internal.conversation.usecase.AwaitCompletion"
)

// Defaults
const (
	DefaultPollInterval = 500 * time.Millisecond
	DefaultMaxWait      = 2 * time.Minute
)

// logPreviewLen caps how much of a message is echoed into debug logs.
const logPreviewLen = 50
