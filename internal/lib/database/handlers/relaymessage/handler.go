package relaymessage

import "gorm.io/gorm"

type HandlerDBRelayMessage struct {
	DB *gorm.DB
}

func NewHandlerDBRelayMessage(db *gorm.DB) *HandlerDBRelayMessage {
	return &HandlerDBRelayMessage{DB: db}
}
