package bot

import "time"

// Message size and delivery constants.
const (
	// MaxMessageSize is the maximum size for a single Telegram message part.
	MaxMessageSize = 4000
	// DefaultPollTimeout is the long-poll timeout in seconds used when none is configured.
	DefaultPollTimeout = 60
	// updateHandleTimeout bounds the time spent answering one update.
	updateHandleTimeout = 30 * time.Second
)

// Log field names.
const (
	LogFieldUserID    = "user_id"
	LogFieldUsername  = "username"
	LogFieldChatID    = "chat_id"
	LogFieldCommand   = "command"
	LogFieldRequestID = "request_id"
	LogFieldResults   = "results"
	LogFieldParts     = "parts"
)
