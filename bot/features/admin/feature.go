// Package admin implements the owner-only economy management commands.
package admin

import (
	"time"

	"megabot/application"
	"megabot/domain/interfaces"
	"megabot/infrastructure/observability"

	"github.com/bwmarrin/discordgo"
)

// Command names
const (
	CommandAdminPanel     = "adminpanel"
	CommandSetBalance     = "setbalance"
	CommandAddBalance     = "addbalance"
	CommandRemoveBalance  = "removebalance"
	CommandResetBalance   = "resetbalance"
	CommandGiveItem       = "giveitem"
	CommandRemoveItem     = "removeitem"
	CommandClearInventory = "clearinventory"
	CommandViewInventory  = "viewinventory"
	CommandViewUserData   = "viewuserdata"
	CommandResetUser      = "resetuser"
	CommandBackup         = "backup"
)

// CommandNames lists every command this feature handles
var CommandNames = []string{
	CommandAdminPanel,
	CommandSetBalance,
	CommandAddBalance,
	CommandRemoveBalance,
	CommandResetBalance,
	CommandGiveItem,
	CommandRemoveItem,
	CommandClearInventory,
	CommandViewInventory,
	CommandViewUserData,
	CommandResetUser,
	CommandBackup,
}

// Feature handles admin commands
type Feature struct {
	uowFactory    application.UnitOfWorkFactory
	settings      application.LedgerSettings
	authorizer    interfaces.Authorizer
	snapshotStore interfaces.SnapshotStore // nil when backups are not configured
	metrics       *observability.MetricsProvider
	timeout       time.Duration
}

// NewFeature creates a new admin feature instance
func NewFeature(
	uowFactory application.UnitOfWorkFactory,
	settings application.LedgerSettings,
	authorizer interfaces.Authorizer,
	snapshotStore interfaces.SnapshotStore,
	metrics *observability.MetricsProvider,
	timeout time.Duration,
) *Feature {
	return &Feature{
		uowFactory:    uowFactory,
		settings:      settings,
		authorizer:    authorizer,
		snapshotStore: snapshotStore,
		metrics:       metrics,
		timeout:       timeout,
	}
}

// Handles reports whether name is an admin command
func Handles(name string) bool {
	for _, n := range CommandNames {
		if n == name {
			return true
		}
	}
	return false
}

// HandleCommand handles an admin slash command
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	start := time.Now()
	name := i.ApplicationCommandData().Name
	outcome := f.handleCommand(s, i)
	f.metrics.RecordAdminCommand(name, outcome, time.Since(start))
}
