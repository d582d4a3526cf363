package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"gm-bridge-bot/internal/core/errs"
	"gm-bridge-bot/logging"
)

func (d *BotDiscord) registerCommands() error {
	command := &discordgo.ApplicationCommand{
		Name:        "gm",
		Description: "Управление мостом GroupMe",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "config",
				Description: "Привязать канал GroupMe к этому каналу Discord",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "channel",
						Description: "Имя канала GroupMe",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "setconfig",
				Description: "Заменить существующую привязку",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "channel",
						Description: "Имя канала GroupMe",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "getconfig",
				Description: "Показать текущую привязку",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "update",
				Description: "Переслать новые сообщения из GroupMe",
			},
		},
	}

	_, err := d.Session.ApplicationCommandCreate(d.AppID, d.ServerID, command)
	if err != nil {
		return errs.Newf(errs.KindConfiguration, "не удалось зарегистрировать команду /gm: %v", err)
	}
	return nil
}

// handleInteraction разбирает подкоманды /gm. Пользователь всегда получает
// ровно один ответ; внутренние ошибки уходят в лог, а не в чат.
func (d *BotDiscord) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := i.ApplicationCommandData()
	if data.Name != "gm" || len(data.Options) == 0 {
		return
	}

	sub := data.Options[0]
	var err error
	switch sub.Name {
	case "config":
		err = d.handleConfig(i, sub, false)
	case "setconfig":
		err = d.handleConfig(i, sub, true)
	case "getconfig":
		err = d.handleGetConfig(i)
	case "update":
		err = d.handleUpdate(i)
	default:
		err = d.replyEphemeral(i, fmt.Sprintf("Подкоманда %q не поддерживается", sub.Name))
	}

	if err != nil {
		logging.Log("Discord", logrus.ErrorLevel, fmt.Sprintf("Ошибка выполнения /gm %s: %v", sub.Name, err))
		_ = d.replyEphemeral(i, "Произошла ошибка при выполнении команды")
	}
}

func (d *BotDiscord) handleConfig(i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption, replace bool) error {
	name := sub.Options[0].StringValue()

	link, err := d.GroupMe.GroupByName(name)
	if err != nil {
		switch errs.KindOf(err) {
		case errs.KindNotFound:
			return d.replyEphemeral(i, fmt.Sprintf("Канал с именем %q не найден", name))
		case errs.KindTooMany:
			return d.replyEphemeral(i, "Найдено несколько каналов с таким именем, уточните запрос")
		}
		return err
	}

	if replace {
		existing, err := d.Storage.GetLink(i.ChannelID)
		if err != nil {
			return err
		}
		if existing == nil {
			return d.replyEphemeral(i, "Для этого канала привязка ещё не создана")
		}
		if err := d.Storage.RemoveLink(i.ChannelID); err != nil {
			return err
		}
		// История пересылки относится к старой привязке.
		if err := d.DB.RelayMessageHandlers.DeleteRelayMessagesByChannel(i.ChannelID); err != nil {
			logging.Log("Database", logrus.WarnLevel, fmt.Sprintf("Не удалось очистить историю пересылки канала %s: %v", i.ChannelID, err))
		}
	}

	if err := d.Storage.AddLink(i.ChannelID, link); err != nil {
		if errs.IsKind(err, errs.KindConfiguration) {
			return d.replyEphemeral(i, "Этому каналу Discord уже назначен другой канал GroupMe")
		}
		return err
	}

	return d.replyEphemeral(i, fmt.Sprintf("Канал привязан к %s", link.Name))
}

func (d *BotDiscord) handleGetConfig(i *discordgo.InteractionCreate) error {
	link, err := d.Storage.GetLink(i.ChannelID)
	if err != nil {
		return err
	}
	if link == nil {
		return d.replyEphemeral(i, "Этот канал ещё не настроен")
	}

	var relayedMessages, relayedChunks int
	if records, err := d.DB.RelayMessageHandlers.GetRelayMessagesByChannel(i.ChannelID); err == nil {
		seen := make(map[string]struct{})
		for _, record := range records {
			seen[record.GroupMeMsgID] = struct{}{}
		}
		relayedMessages, relayedChunks = len(seen), len(records)
	} else {
		logging.Log("Database", logrus.WarnLevel, fmt.Sprintf("Не удалось прочитать историю пересылки канала %s: %v", i.ChannelID, err))
	}

	return d.replyEphemeral(i, fmt.Sprintf(
		"Текущая привязка: %s (ID %s), последнее сообщение %s, переслано сообщений: %d (фрагментов: %d)",
		link.Name, link.ID, link.LastMessageID, relayedMessages, relayedChunks,
	))
}

func (d *BotDiscord) handleUpdate(i *discordgo.InteractionCreate) error {
	if d.Relayer == nil {
		return errs.New(errs.KindConfiguration, "оркестратор пересылки ещё не подключен")
	}

	link, err := d.Storage.GetLink(i.ChannelID)
	if err != nil {
		return err
	}
	if link == nil {
		return d.replyEphemeral(i, "Этот канал ещё не настроен")
	}

	messages, err := d.Relayer.Pending(link)
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		return d.replyEphemeral(i, "Новых сообщений нет")
	}

	// Подтверждаем до доставки: окно ответа на интеракцию короткое,
	// а пересылка длинной истории может занять минуты.
	if err := d.replyEphemeral(i, fmt.Sprintf("Пересылаем сообщений: %d", len(messages))); err != nil {
		return err
	}
	if err := d.Session.InteractionResponseDelete(i.Interaction); err != nil {
		logging.Log("Discord", logrus.WarnLevel, fmt.Sprintf("Не удалось убрать подтверждение в канале %s: %v", i.ChannelID, err))
	}

	_, err = d.Relayer.Deliver(i.ChannelID, link, messages)
	return err
}

func (d *BotDiscord) replyEphemeral(i *discordgo.InteractionCreate, content string) error {
	return d.Session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
