package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"megabot/application"
	"megabot/bot/common"
	"megabot/domain/entities"
	"megabot/domain/interfaces"
	"megabot/domain/services"
	"megabot/domain/testhelpers"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testAdminID = int64(999999)
	testGuildID = int64(555555555)
)

// fakeUnitOfWork serves mock repositories and records transaction calls
type fakeUnitOfWork struct {
	accounts  *testhelpers.MockAccountRepository
	inventory *testhelpers.MockInventoryRepository
	boosts    *testhelpers.MockBoostRepository
	robStats  *testhelpers.MockRobStatsRepository
	history   *testhelpers.MockBalanceHistoryRepository
	events    *testhelpers.MockEventPublisher

	began      bool
	committed  bool
	rolledBack bool
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		accounts:  new(testhelpers.MockAccountRepository),
		inventory: new(testhelpers.MockInventoryRepository),
		boosts:    new(testhelpers.MockBoostRepository),
		robStats:  new(testhelpers.MockRobStatsRepository),
		history:   new(testhelpers.MockBalanceHistoryRepository),
		events:    new(testhelpers.MockEventPublisher),
	}
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { u.began = true; return nil }
func (u *fakeUnitOfWork) Commit() error                   { u.committed = true; return nil }
func (u *fakeUnitOfWork) Rollback() error {
	if !u.committed {
		u.rolledBack = true
	}
	return nil
}
func (u *fakeUnitOfWork) AccountRepository() interfaces.AccountRepository     { return u.accounts }
func (u *fakeUnitOfWork) InventoryRepository() interfaces.InventoryRepository { return u.inventory }
func (u *fakeUnitOfWork) BoostRepository() interfaces.BoostRepository         { return u.boosts }
func (u *fakeUnitOfWork) RobStatsRepository() interfaces.RobStatsRepository   { return u.robStats }
func (u *fakeUnitOfWork) BalanceHistoryRepository() interfaces.BalanceHistoryRepository {
	return u.history
}
func (u *fakeUnitOfWork) EventBus() interfaces.EventPublisher { return u.events }

// fakeFactory hands out a single unit of work and counts requests for it
type fakeFactory struct {
	uow     *fakeUnitOfWork
	guildID int64
	calls   int
}

func (f *fakeFactory) CreateForGuild(guildID int64) application.UnitOfWork {
	f.calls++
	f.guildID = guildID
	return f.uow
}

func newTestFeature(factory application.UnitOfWorkFactory, store interfaces.SnapshotStore) *Feature {
	settings := application.LedgerSettings{
		StartingBalance: 1000,
		Catalog:         entities.NewDefaultItemCatalog(),
	}
	return NewFeature(factory, settings, services.NewStaticAdminPolicy([]int64{testAdminID}), store, nil, time.Second)
}

func userOption(id string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: "user", Type: discordgo.ApplicationCommandOptionUser, Value: id}
}

func intOption(name string, value int64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(value)}
}

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: value}
}

func commandInteraction(callerID string, data discordgo.ApplicationCommandInteractionData) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:    discordgo.InteractionApplicationCommand,
		GuildID: "555555555",
		Member:  &discordgo.Member{User: &discordgo.User{ID: callerID, Username: "root"}},
		Data:    data,
	}}
}

func TestParseRequest(t *testing.T) {
	t.Parallel()

	resolved := &discordgo.ApplicationCommandInteractionDataResolved{
		Users: map[string]*discordgo.User{"123": {ID: "123", Username: "alice", GlobalName: "Alice"}},
	}

	tests := []struct {
		name    string
		data    discordgo.ApplicationCommandInteractionData
		want    *request
		wantMsg string
	}{
		{
			name: "amount command",
			data: discordgo.ApplicationCommandInteractionData{
				Name:     CommandSetBalance,
				Options:  []*discordgo.ApplicationCommandInteractionDataOption{userOption("123"), intOption("amount", 5000)},
				Resolved: resolved,
			},
			want: &request{
				command:  CommandSetBalance,
				target:   &target{ID: 123, Username: "alice", DisplayName: "Alice"},
				amount:   5000,
				quantity: 1,
			},
		},
		{
			name: "quantity defaults to one",
			data: discordgo.ApplicationCommandInteractionData{
				Name:     CommandGiveItem,
				Options:  []*discordgo.ApplicationCommandInteractionDataOption{userOption("123"), stringOption("item", "padlock")},
				Resolved: resolved,
			},
			want: &request{
				command:  CommandGiveItem,
				target:   &target{ID: 123, Username: "alice", DisplayName: "Alice"},
				item:     "padlock",
				quantity: 1,
			},
		},
		{
			name: "reset with confirmation",
			data: discordgo.ApplicationCommandInteractionData{
				Name:    CommandResetUser,
				Options: []*discordgo.ApplicationCommandInteractionDataOption{userOption("123"), stringOption("confirm", "CONFIRM")},
			},
			want: &request{
				command:  CommandResetUser,
				target:   &target{ID: 123, Username: "123", DisplayName: "<@123>"},
				confirm:  "CONFIRM",
				quantity: 1,
			},
		},
		{
			name: "panel takes no user",
			data: discordgo.ApplicationCommandInteractionData{Name: CommandAdminPanel},
			want: &request{command: CommandAdminPanel, quantity: 1},
		},
		{
			name:    "missing user",
			data:    discordgo.ApplicationCommandInteractionData{Name: CommandViewInventory},
			wantMsg: "Please specify a user!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := parseRequest(tt.data)
			if tt.wantMsg != "" {
				var botErr *common.BotError
				require.ErrorAs(t, err, &botErr)
				assert.Equal(t, tt.wantMsg, botErr.UserMessage)
				assert.True(t, botErr.IsUserError())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req)
		})
	}
}

func TestResolveTarget(t *testing.T) {
	t.Parallel()

	t.Run("member nickname wins", func(t *testing.T) {
		t.Parallel()

		resolved := &discordgo.ApplicationCommandInteractionDataResolved{
			Users:   map[string]*discordgo.User{"123": {ID: "123", Username: "alice", GlobalName: "Alice"}},
			Members: map[string]*discordgo.Member{"123": {Nick: "Ally"}},
		}
		got, err := resolveTarget(resolved, "123")
		require.NoError(t, err)
		assert.Equal(t, &target{ID: 123, Username: "alice", DisplayName: "Ally"}, got)
	})

	t.Run("non-string value", func(t *testing.T) {
		t.Parallel()

		_, err := resolveTarget(nil, 123)
		require.Error(t, err)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		t.Parallel()

		_, err := resolveTarget(nil, "alice")
		require.Error(t, err)
	})
}

func TestToBotError(t *testing.T) {
	t.Parallel()

	req := &request{command: CommandRemoveItem, target: testTarget}

	tests := []struct {
		name       string
		err        error
		wantMsg    string
		userError  bool
		wantResult string
	}{
		{
			name:       "authorization",
			err:        &entities.AuthorizationError{DiscordID: 1, Action: "setbalance"},
			wantMsg:    PermissionDeniedMessage,
			userError:  true,
			wantResult: "denied",
		},
		{
			name:       "negative amount",
			err:        entities.NewValidationError("amount", "must not be negative"),
			wantMsg:    "Amount cannot be negative!",
			userError:  true,
			wantResult: "rejected",
		},
		{
			name:       "non-positive amount",
			err:        entities.NewValidationError("amount", "must be positive"),
			wantMsg:    "Amount must be positive!",
			userError:  true,
			wantResult: "rejected",
		},
		{
			name:       "quantity",
			err:        entities.NewValidationError("quantity", "must be positive"),
			wantMsg:    "Quantity must be positive!",
			userError:  true,
			wantResult: "rejected",
		},
		{
			name:       "missing confirmation",
			err:        entities.NewValidationError("confirm", "confirmation token mismatch"),
			wantMsg:    "Please type 'CONFIRM' to proceed with full reset!",
			userError:  true,
			wantResult: "rejected",
		},
		{
			name: "insufficient quantity with suggestions",
			err: &entities.InsufficientQuantityError{
				ItemName: "padlok", Have: 0, Requested: 1, Suggestions: []string{"padlock", "lockpick"},
			},
			wantMsg:    "Alice only has 0x Padlok! Did you mean **Padlock** or **Lockpick**?",
			userError:  true,
			wantResult: "rejected",
		},
		{
			name:       "insufficient quantity without suggestions",
			err:        &entities.InsufficientQuantityError{ItemName: "padlock", Have: 2, Requested: 5},
			wantMsg:    "Alice only has 2x Padlock!",
			userError:  true,
			wantResult: "rejected",
		},
		{
			name:       "insufficient balance",
			err:        &entities.InsufficientBalanceError{Balance: 1000, Requested: 2000},
			wantMsg:    "Alice only has $1,000! Cannot remove $2,000.",
			userError:  true,
			wantResult: "rejected",
		},
		{
			name:       "unexpected",
			err:        errors.New("connection reset by peer"),
			wantMsg:    common.GenericErrorMessage,
			userError:  false,
			wantResult: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			botErr := toBotError(tt.err, req)
			assert.Equal(t, tt.wantMsg, botErr.UserMessage)
			assert.Equal(t, tt.userError, botErr.IsUserError())
			assert.Equal(t, tt.wantResult, outcomeOf(botErr))
			assert.NotContains(t, botErr.UserMessage, "connection reset")
		})
	}
}

func TestRun_UnauthorizedCallerNeverTouchesLedger(t *testing.T) {
	t.Parallel()

	factory := &fakeFactory{uow: newFakeUnitOfWork()}
	feature := newTestFeature(factory, nil)

	for _, command := range CommandNames {
		data := discordgo.ApplicationCommandInteractionData{
			Name:    command,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{userOption("123"), intOption("amount", 100)},
		}
		_, embed, err := feature.run(commandInteraction("42", data), data)

		var authErr *entities.AuthorizationError
		require.ErrorAs(t, err, &authErr, command)
		assert.Equal(t, int64(42), authErr.DiscordID)
		assert.Nil(t, embed)
		assert.Equal(t, PermissionDeniedMessage, toBotError(err, nil).UserMessage)
	}

	assert.Zero(t, factory.calls)
}

func TestExecute(t *testing.T) {
	t.Parallel()

	t.Run("admin panel needs no transaction", func(t *testing.T) {
		t.Parallel()

		factory := &fakeFactory{uow: newFakeUnitOfWork()}
		embed, err := newTestFeature(factory, nil).execute(context.Background(), testGuildID, testAdminID, "root", &request{command: CommandAdminPanel})
		require.NoError(t, err)
		assert.Equal(t, "🔐 Admin Panel", embed.Title)
		assert.Zero(t, factory.calls)
	})

	t.Run("backup without store", func(t *testing.T) {
		t.Parallel()

		factory := &fakeFactory{uow: newFakeUnitOfWork()}
		_, err := newTestFeature(factory, nil).execute(context.Background(), testGuildID, testAdminID, "root", &request{command: CommandBackup})

		var botErr *common.BotError
		require.ErrorAs(t, err, &botErr)
		assert.Equal(t, "Backups are not configured for this bot.", botErr.UserMessage)
		assert.Zero(t, factory.calls)
	})

	t.Run("view inventory commits", func(t *testing.T) {
		t.Parallel()

		uow := newFakeUnitOfWork()
		uow.inventory.On("GetByUser", mock.Anything, testTarget.ID).Return([]*entities.InventoryItem{
			{ItemName: "padlock", ItemType: entities.ItemTypeSecurity, Quantity: 2},
		}, nil)
		factory := &fakeFactory{uow: uow}

		req := &request{command: CommandViewInventory, target: testTarget, quantity: 1}
		embed, err := newTestFeature(factory, nil).execute(context.Background(), testGuildID, testAdminID, "root", req)
		require.NoError(t, err)

		assert.Equal(t, testGuildID, factory.guildID)
		assert.True(t, uow.began)
		assert.True(t, uow.committed)
		assert.False(t, uow.rolledBack)
		require.Len(t, embed.Fields, 1)
		assert.Equal(t, "🛡️ **Padlock** x2", embed.Fields[0].Value)
		uow.inventory.AssertExpectations(t)
	})

	t.Run("rejected command rolls back", func(t *testing.T) {
		t.Parallel()

		uow := newFakeUnitOfWork()
		factory := &fakeFactory{uow: uow}

		req := &request{command: CommandSetBalance, target: testTarget, amount: -5, quantity: 1}
		_, err := newTestFeature(factory, nil).execute(context.Background(), testGuildID, testAdminID, "root", req)

		var validation *entities.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.False(t, uow.committed)
		assert.True(t, uow.rolledBack)
		uow.accounts.AssertNotCalled(t, "EnsureForUpdate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("backup saves snapshot", func(t *testing.T) {
		t.Parallel()

		uow := newFakeUnitOfWork()
		uow.accounts.On("ListAll", mock.Anything).Return([]*entities.Account{{DiscordID: 1, GuildID: testGuildID, Balance: 1000}}, nil)
		uow.inventory.On("ListAll", mock.Anything).Return([]*entities.InventoryItem{}, nil)
		store := new(testhelpers.MockSnapshotStore)
		store.On("Save", mock.Anything, mock.Anything).Return("s3://bucket/megabot/guild-555555555/x.json", nil)

		embed, err := newTestFeature(&fakeFactory{uow: uow}, store).execute(context.Background(), testGuildID, testAdminID, "root", &request{command: CommandBackup})
		require.NoError(t, err)
		assert.Equal(t, "✅ Backup Created", embed.Title)
		assert.Equal(t, "`s3://bucket/megabot/guild-555555555/x.json`", embed.Fields[0].Value)
		assert.Equal(t, "1", embed.Fields[1].Value)
		store.AssertExpectations(t)
	})
}
