package relaymessage

import modeldb "gm-bridge-bot/internal/lib/database/model"

func (h *HandlerDBRelayMessage) DeleteRelayMessagesByChannel(channelID string) error {
	return h.DB.Where("channel_id = ?", channelID).Delete(&modeldb.RelayMessage{}).Error
}
