package commands

import (
	"errors"

	"tracking/internal/pkg/guard"
)

var (
	ErrSendHoldRemindersCommandIsNotConstructed = errors.New(
		"SendHoldRemindersCommand must be created via NewSendHoldRemindersCommand constructor",
	)
)

// SendHoldRemindersCommand represents one sweep over the hold area looking
// for units that have sat in rework limbo too long. It carries no
// parameters; the staleness threshold is configuration of the handler.
type SendHoldRemindersCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewSendHoldRemindersCommand creates a stale-hold sweep command.
func NewSendHoldRemindersCommand() SendHoldRemindersCommand {
	return SendHoldRemindersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c SendHoldRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSendHoldRemindersCommandIsNotConstructed)
}
