package relay

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"gm-bridge-bot/internal/core/model"
	modeldb "gm-bridge-bot/internal/lib/database/model"
	"gm-bridge-bot/logging"
)

// Fetcher выбирает из источника сообщения новее водяного знака привязки.
type Fetcher interface {
	MessagesSince(link *model.ChannelLink) ([]*model.Message, error)
}

// Sink доставляет одно сообщение в канал назначения (все фрагменты
// по порядку) и возвращает ID созданных там сообщений.
type Sink interface {
	SendGroupMeMessage(discordChannelID string, message *model.Message) ([]string, error)
}

// LinkStore фиксирует продвижение водяного знака привязки.
type LinkStore interface {
	SetLink(discordChannelID string, link *model.ChannelLink) error
}

// HistoryRecorder ведёт историю пересылки. Её ошибки не критичны.
type HistoryRecorder interface {
	CreateRelayMessage(message modeldb.RelayMessage) error
}

type Relayer struct {
	fetcher Fetcher
	sink    Sink
	links   LinkStore
	history HistoryRecorder
}

func NewRelayer(fetcher Fetcher, sink Sink, links LinkStore, history HistoryRecorder) *Relayer {
	return &Relayer{
		fetcher: fetcher,
		sink:    sink,
		links:   links,
		history: history,
	}
}

// Pending возвращает сообщения привязки новее водяного знака, от старых
// к новым, ничего не отправляя. Водяной знак не трогается.
func (r *Relayer) Pending(link *model.ChannelLink) ([]*model.Message, error) {
	return r.fetcher.MessagesSince(link)
}

// Deliver пересылает выбранные сообщения по порядку и возвращает их
// количество. Водяной знак двигается на ID сообщения только после доставки
// всех его фрагментов: обрыв посередине приводит к повторной отправке этого
// сообщения при следующем запуске, а не к потере хвоста. Первая же ошибка
// доставки прерывает запуск; зафиксированный прогресс сохраняется.
func (r *Relayer) Deliver(discordChannelID string, link *model.ChannelLink, messages []*model.Message) (int, error) {
	count := 0
	for _, message := range messages {
		sentIDs, err := r.sink.SendGroupMeMessage(discordChannelID, message)
		if err != nil {
			return count, err
		}

		r.record(discordChannelID, message.ID, sentIDs)

		link.LastMessageID = message.ID
		if err := r.links.SetLink(discordChannelID, link); err != nil {
			return count, err
		}
		count++
	}

	logging.Log("Relay", logrus.InfoLevel, fmt.Sprintf("Переслано %d сообщений в канал %s", count, discordChannelID))
	return count, nil
}

func (r *Relayer) record(discordChannelID, groupMeMsgID string, sentIDs []string) {
	if r.history == nil {
		return
	}
	for i, discordMsgID := range sentIDs {
		err := r.history.CreateRelayMessage(modeldb.RelayMessage{
			ChannelID:    discordChannelID,
			GroupMeMsgID: groupMeMsgID,
			DiscordMsgID: discordMsgID,
			ChunkIndex:   i,
		})
		if err != nil {
			logging.Log("Database", logrus.WarnLevel, fmt.Sprintf("Не удалось записать историю пересылки сообщения %s: %v", groupMeMsgID, err))
		}
	}
}
