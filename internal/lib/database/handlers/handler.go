package handlers

import (
	"gorm.io/gorm"

	"gm-bridge-bot/internal/lib/database/handlers/relaymessage"
)

type DBHandlers struct {
	DB                   *gorm.DB
	RelayMessageHandlers *relaymessage.HandlerDBRelayMessage
}
