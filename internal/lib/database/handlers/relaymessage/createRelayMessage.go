package relaymessage

import modeldb "gm-bridge-bot/internal/lib/database/model"

func (h *HandlerDBRelayMessage) CreateRelayMessage(message modeldb.RelayMessage) error {
	return h.DB.Create(&message).Error
}
