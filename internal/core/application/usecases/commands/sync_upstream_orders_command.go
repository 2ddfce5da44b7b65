package commands

import (
	"errors"

	"printorders/internal/pkg/guard"
)

var ErrSyncUpstreamOrdersCommandIsNotConstructed = errors.New(
	"SyncUpstreamOrdersCommand must be created via NewSyncUpstreamOrdersCommand constructor",
)

// SyncUpstreamOrdersCommand imports customer orders from the upstream shop.
// It is a parameterless command.
type SyncUpstreamOrdersCommand struct {
	guard guard.ConstructorGuard
}

func NewSyncUpstreamOrdersCommand() SyncUpstreamOrdersCommand {
	return SyncUpstreamOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SyncUpstreamOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSyncUpstreamOrdersCommandIsNotConstructed)
}

// SyncResult reports how many upstream orders were imported and how many
// were skipped as already present or unusable.
type SyncResult struct {
	Imported int
	Skipped  int
}
