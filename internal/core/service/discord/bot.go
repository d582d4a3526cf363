package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"gm-bridge-bot/config"
	"gm-bridge-bot/internal/core/errs"
	"gm-bridge-bot/internal/core/model"
	"gm-bridge-bot/internal/core/service/groupme"
	"gm-bridge-bot/internal/lib/database/handlers"
	"gm-bridge-bot/internal/lib/storage"
	"gm-bridge-bot/logging"
)

// Relayer выбирает новые сообщения привязки и пересылает их.
type Relayer interface {
	Pending(link *model.ChannelLink) ([]*model.Message, error)
	Deliver(discordChannelID string, link *model.ChannelLink, messages []*model.Message) (int, error)
}

// botSession — подмножество API Discord, которым пользуются обработчики
// команд и отправка. *discordgo.Session реализует его целиком.
type botSession interface {
	ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseDelete(interaction *discordgo.Interaction, options ...discordgo.RequestOption) error
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type BotDiscord struct {
	Session  botSession
	Storage  *storage.Storage
	DB       *handlers.DBHandlers
	GroupMe  *groupme.Client
	Resolver *WebhookResolver
	Relayer  Relayer
	AppID    string
	ServerID string
}

func NewDiscordBot(configData *config.Config, storageData *storage.Storage, dbHandlers *handlers.DBHandlers, groupMeClient *groupme.Client) (*BotDiscord, error) {
	session, err := discordgo.New("Bot " + configData.DiscordToken)
	if err != nil {
		return nil, errs.Newf(errs.KindConfiguration, "не удалось создать сессию Discord: %v", err)
	}

	bot := &BotDiscord{
		Session:  session,
		Storage:  storageData,
		DB:       dbHandlers,
		GroupMe:  groupMeClient,
		ServerID: configData.ServerID,
	}
	session.AddHandler(bot.handleInteraction)

	if err := session.Open(); err != nil {
		return nil, errs.Newf(errs.KindConfiguration, "не удалось подключиться к Discord: %v", err)
	}

	bot.AppID = session.State.User.ID
	bot.Resolver = &WebhookResolver{
		Session:     session,
		AppID:       bot.AppID,
		FetchAvatar: groupMeClient.Avatar,
	}

	// Ошибки регистрации команд не замалчиваем: без команд бот бесполезен.
	if err := bot.registerCommands(); err != nil {
		return nil, err
	}

	logging.Log("Discord", logrus.InfoLevel, "Создана сессия Discord, команды зарегистрированы")
	return bot, nil
}

// SetRelayer подключает оркестратор пересылки после сборки всех зависимостей.
func (d *BotDiscord) SetRelayer(relayer Relayer) {
	d.Relayer = relayer
}

// SendGroupMeMessage доставляет одно сообщение GroupMe в канал Discord:
// собирает текст, режет на фрагменты, подбирает вебхук под отправителя и
// отправляет фрагменты строго по порядку. Возвращает ID созданных сообщений.
func (d *BotDiscord) SendGroupMeMessage(channelID string, message *model.Message) ([]string, error) {
	content := buildContent(message)
	chunks := SplitMessage(content, MessageSplitLimit)
	tag := timestampTag(message)

	webhook, err := d.Resolver.Resolve(channelID, message)
	if err != nil {
		return nil, err
	}

	var sentIDs []string
	for i, chunk := range chunks {
		params := &discordgo.WebhookParams{Content: tag + chunk}

		// Вложения уходят только с последним фрагментом.
		if i == len(chunks)-1 {
			params.Embeds = buildEmbeds(message)
			params.Files = buildFiles(message)
		}

		sent, err := d.Session.WebhookExecute(webhook.ID, webhook.Token, true, params)
		if err != nil {
			return sentIDs, errs.Newf(errs.KindConnection, "ошибка отправки через вебхук в канал %s: %v", channelID, err)
		}
		if sent != nil {
			sentIDs = append(sentIDs, sent.ID)
		}
	}

	logging.Log("Discord", logrus.InfoLevel, fmt.Sprintf("Сообщение %s от %s переслано в канал %s (%d фрагм.)", message.ID, message.Member.Name, channelID, len(chunks)))
	return sentIDs, nil
}
