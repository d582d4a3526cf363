package discord

import (
	"encoding/base64"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"gm-bridge-bot/internal/core/errs"
	"gm-bridge-bot/internal/core/model"
	"gm-bridge-bot/logging"
)

// Лимит Discord на количество вебхуков в одном канале.
const maxChannelWebhooks = 15

// Запасные аватары: для системных сообщений и для отправителей,
// чей аватар не удалось загрузить.
const (
	systemAvatar  = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="
	defaultAvatar = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNsaGioBwAFhAJ/g3qUsgAAAABJRU5ErkJggg=="
)

// webhookSession — подмножество API Discord, которым пользуется резолвер.
// *discordgo.Session реализует его целиком.
type webhookSession interface {
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelWebhooks(channelID string, options ...discordgo.RequestOption) ([]*discordgo.Webhook, error)
	WebhookCreate(channelID, name, avatar string, options ...discordgo.RequestOption) (*discordgo.Webhook, error)
	WebhookEdit(webhookID, name, avatar, channelID string, options ...discordgo.RequestOption) (*discordgo.Webhook, error)
	WebhookDelete(webhookID string, options ...discordgo.RequestOption) error
}

// WebhookResolver подбирает вебхук канала под отправителя сообщения:
// находит принадлежащий приложению вебхук, создаёт его при отсутствии
// и правит имя с аватаром, когда отправитель сменился.
type WebhookResolver struct {
	Session     webhookSession
	AppID       string
	FetchAvatar func(avatarURL string) ([]byte, error)
}

// Resolve возвращает вебхук, изображающий отправителя сообщения.
// Если имя вебхука уже совпадает с отправителем, сетевых записей не делается.
func (r *WebhookResolver) Resolve(channelID string, message *model.Message) (*discordgo.Webhook, error) {
	channel, err := r.Session.Channel(channelID)
	if err != nil || channel == nil {
		return nil, errs.Newf(errs.KindConfiguration, "канал Discord %s недоступен: %v", channelID, err)
	}
	if channel.Type != discordgo.ChannelTypeGuildText {
		return nil, errs.Newf(errs.KindConfiguration, "канал %s не является текстовым каналом сервера", channelID)
	}

	hooks, err := r.Session.ChannelWebhooks(channelID)
	if err != nil {
		return nil, errs.Newf(errs.KindConnection, "не удалось получить вебхуки канала %s: %v", channelID, err)
	}

	var owned *discordgo.Webhook
	for _, hook := range hooks {
		if hook.ApplicationID == r.AppID {
			owned = hook
			break
		}
	}

	if owned != nil && owned.Name == message.Member.Name {
		// Вебхук уже изображает этого отправителя, правки не нужны.
		return owned, nil
	}

	avatar := r.senderAvatar(message)

	if owned == nil {
		// На переполнении лимита чистим канал целиком и создаём заново.
		if len(hooks) >= maxChannelWebhooks {
			logging.Log("Discord", logrus.WarnLevel, fmt.Sprintf("В канале %s исчерпан лимит вебхуков, удаляем все", channelID))
			for _, hook := range hooks {
				if err := r.Session.WebhookDelete(hook.ID); err != nil {
					return nil, errs.Newf(errs.KindConnection, "не удалось удалить вебхук %s: %v", hook.ID, err)
				}
			}
		}
		created, err := r.Session.WebhookCreate(channelID, message.Member.Name, avatar)
		if err != nil {
			return nil, errs.Newf(errs.KindConnection, "не удалось создать вебхук в канале %s: %v", channelID, err)
		}
		return created, nil
	}

	edited, err := r.Session.WebhookEdit(owned.ID, message.Member.Name, avatar, "")
	if err != nil {
		return nil, errs.Newf(errs.KindConnection, "не удалось обновить вебхук %s: %v", owned.ID, err)
	}
	return edited, nil
}

// senderAvatar возвращает аватар отправителя как data URI. Ошибка загрузки
// не валит пересылку: подставляется запасная картинка.
func (r *WebhookResolver) senderAvatar(message *model.Message) string {
	if message.Member.AvatarURL != "" && r.FetchAvatar != nil {
		data, err := r.FetchAvatar(message.Member.AvatarURL)
		if err == nil {
			return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
		}
		logging.Log("Discord", logrus.WarnLevel, fmt.Sprintf("Не удалось загрузить аватар отправителя %s: %v", message.Member.Name, err))
	}

	if message.System {
		return systemAvatar
	}
	return defaultAvatar
}
