package chat

import "errors"

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("caller is not a participant")
	ErrRecipientNotFound    = errors.New("recipient not found")
	ErrMessageRequired      = errors.New("message text is required")
	ErrMessageTooLong       = errors.New("message too long")
	ErrSelfMessage          = errors.New("cannot message yourself")
)

// MaxMessageLen caps private message length.
const MaxMessageLen = 1000
