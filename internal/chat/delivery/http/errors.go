package http

import (
	"errors"

	"board-srv/internal/chat"
	pkgErrors "board-srv/pkg/errors"
)

var (
	errConversationNotFound = pkgErrors.NewHTTPError(404, "Conversation not found")
	errNotParticipant       = pkgErrors.NewHTTPError(403, "You are not part of this conversation")
	errRecipientNotFound    = pkgErrors.NewHTTPError(404, "Recipient not found")
	errMessageRequired      = pkgErrors.NewHTTPError(400, "Message text is required")
	errMessageTooLong       = pkgErrors.NewHTTPError(400, "Message too long (max 1000 characters)")
	errSelfMessage          = pkgErrors.NewHTTPError(400, "Cannot message yourself")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrConversationNotFound):
		return errConversationNotFound
	case errors.Is(err, chat.ErrNotParticipant):
		return errNotParticipant
	case errors.Is(err, chat.ErrRecipientNotFound):
		return errRecipientNotFound
	case errors.Is(err, chat.ErrMessageRequired):
		return errMessageRequired
	case errors.Is(err, chat.ErrMessageTooLong):
		return errMessageTooLong
	case errors.Is(err, chat.ErrSelfMessage):
		return errSelfMessage
	default:
		panic(err)
	}
}
