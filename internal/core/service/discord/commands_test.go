package discord

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gm-bridge-bot/internal/core/model"
	"gm-bridge-bot/internal/lib/database/handlers"
	"gm-bridge-bot/internal/lib/database/handlers/relaymessage"
	modeldb "gm-bridge-bot/internal/lib/database/model"
	"gm-bridge-bot/internal/lib/storage"
)

// fakeBotSession записывает порядок обращений к API Discord.
type fakeBotSession struct {
	events    []string
	responses []string
}

func (f *fakeBotSession) ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error) {
	f.events = append(f.events, "register")
	return cmd, nil
}

func (f *fakeBotSession) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
	f.events = append(f.events, "respond")
	f.responses = append(f.responses, resp.Data.Content)
	return nil
}

func (f *fakeBotSession) InteractionResponseDelete(interaction *discordgo.Interaction, options ...discordgo.RequestOption) error {
	f.events = append(f.events, "delete")
	return nil
}

func (f *fakeBotSession) WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.events = append(f.events, "execute")
	return &discordgo.Message{ID: "m1"}, nil
}

type fakeRelayer struct {
	session   *fakeBotSession
	messages  []*model.Message
	err       error
	delivered int
}

func (f *fakeRelayer) Pending(link *model.ChannelLink) ([]*model.Message, error) {
	return f.messages, f.err
}

func (f *fakeRelayer) Deliver(discordChannelID string, link *model.ChannelLink, messages []*model.Message) (int, error) {
	f.session.events = append(f.session.events, "deliver")
	f.delivered += len(messages)
	return len(messages), nil
}

func updateInteraction(channelID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:      discordgo.InteractionApplicationCommand,
		ChannelID: channelID,
		Data: discordgo.ApplicationCommandInteractionData{
			Name: "gm",
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "update", Type: discordgo.ApplicationCommandOptionSubCommand},
			},
		},
	}}
}

func newTestHistory(t *testing.T) *handlers.DBHandlers {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&modeldb.RelayMessage{}))
	return &handlers.DBHandlers{
		DB:                   db,
		RelayMessageHandlers: relaymessage.NewHandlerDBRelayMessage(db),
	}
}

func TestHandleUpdate_AcknowledgesBeforeDelivery(t *testing.T) {
	session := &fakeBotSession{}
	relayer := &fakeRelayer{
		session:  session,
		messages: []*model.Message{{ID: "49"}, {ID: "50"}},
	}

	storageData := storage.NewStorage(t.TempDir())
	require.NoError(t, storageData.AddLink("chan-1", model.NewChannelLink("42", "Test Group")))

	bot := &BotDiscord{Session: session, Storage: storageData, Relayer: relayer}
	bot.handleInteraction(nil, updateInteraction("chan-1"))

	// Подтверждение уходит и убирается до доставки: её длительность
	// не ограничена окном ответа на интеракцию.
	assert.Equal(t, []string{"respond", "delete", "deliver"}, session.events)
	assert.Equal(t, 2, relayer.delivered)
	require.Len(t, session.responses, 1)
	assert.Contains(t, session.responses[0], "Пересылаем")
}

func TestHandleUpdate_NoNewMessages(t *testing.T) {
	session := &fakeBotSession{}
	relayer := &fakeRelayer{session: session}

	storageData := storage.NewStorage(t.TempDir())
	require.NoError(t, storageData.AddLink("chan-1", model.NewChannelLink("42", "Test Group")))

	bot := &BotDiscord{Session: session, Storage: storageData, Relayer: relayer}
	bot.handleInteraction(nil, updateInteraction("chan-1"))

	assert.Equal(t, []string{"respond"}, session.events)
	assert.Zero(t, relayer.delivered)
	require.Len(t, session.responses, 1)
	assert.Equal(t, "Новых сообщений нет", session.responses[0])
}

func TestHandleUpdate_UnconfiguredChannel(t *testing.T) {
	session := &fakeBotSession{}
	relayer := &fakeRelayer{session: session}

	bot := &BotDiscord{Session: session, Storage: storage.NewStorage(t.TempDir()), Relayer: relayer}
	bot.handleInteraction(nil, updateInteraction("chan-1"))

	assert.Zero(t, relayer.delivered)
	require.Len(t, session.responses, 1)
	assert.Equal(t, "Этот канал ещё не настроен", session.responses[0])
}

func TestHandleUpdate_FetchErrorReportsFailure(t *testing.T) {
	session := &fakeBotSession{}
	relayer := &fakeRelayer{session: session, err: errors.New("GroupMe недоступен")}

	storageData := storage.NewStorage(t.TempDir())
	require.NoError(t, storageData.AddLink("chan-1", model.NewChannelLink("42", "Test Group")))

	bot := &BotDiscord{Session: session, Storage: storageData, Relayer: relayer}
	bot.handleInteraction(nil, updateInteraction("chan-1"))

	assert.NotContains(t, session.events, "deliver")
	require.Len(t, session.responses, 1)
	assert.Equal(t, "Произошла ошибка при выполнении команды", session.responses[0])
}

func TestHandleGetConfig_ReportsHistory(t *testing.T) {
	session := &fakeBotSession{}
	dbHandlers := newTestHistory(t)

	// Одно сообщение двумя фрагментами и одно целиком.
	for _, record := range []modeldb.RelayMessage{
		{ChannelID: "chan-1", GroupMeMsgID: "49", DiscordMsgID: "d1", ChunkIndex: 0},
		{ChannelID: "chan-1", GroupMeMsgID: "49", DiscordMsgID: "d2", ChunkIndex: 1},
		{ChannelID: "chan-1", GroupMeMsgID: "50", DiscordMsgID: "d3", ChunkIndex: 0},
		{ChannelID: "chan-2", GroupMeMsgID: "7", DiscordMsgID: "d4", ChunkIndex: 0},
	} {
		require.NoError(t, dbHandlers.RelayMessageHandlers.CreateRelayMessage(record))
	}

	storageData := storage.NewStorage(t.TempDir())
	link := model.NewChannelLink("42", "Test Group")
	link.LastMessageID = "50"
	require.NoError(t, storageData.AddLink("chan-1", link))

	bot := &BotDiscord{Session: session, Storage: storageData, DB: dbHandlers}
	bot.handleInteraction(nil, &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:      discordgo.InteractionApplicationCommand,
		ChannelID: "chan-1",
		Data: discordgo.ApplicationCommandInteractionData{
			Name: "gm",
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "getconfig", Type: discordgo.ApplicationCommandOptionSubCommand},
			},
		},
	}})

	require.Len(t, session.responses, 1)
	assert.Contains(t, session.responses[0], "Test Group")
	assert.Contains(t, session.responses[0], "последнее сообщение 50")
	assert.Contains(t, session.responses[0], "переслано сообщений: 2 (фрагментов: 3)")
}
