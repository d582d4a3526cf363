package relaymessage

import modeldb "gm-bridge-bot/internal/lib/database/model"

func (h *HandlerDBRelayMessage) GetRelayMessagesByChannel(channelID string) ([]modeldb.RelayMessage, error) {
	var messages []modeldb.RelayMessage
	err := h.DB.Where("channel_id = ?", channelID).Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
