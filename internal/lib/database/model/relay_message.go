package modeldb

// RelayMessage — запись истории пересылки: один отправленный фрагмент
// сообщения GroupMe и соответствующее ему сообщение Discord.
type RelayMessage struct {
	ID           uint   `gorm:"primaryKey"`
	ChannelID    string `gorm:"not null;index"`
	GroupMeMsgID string `gorm:"not null;index"`
	DiscordMsgID string `gorm:"not null"`
	ChunkIndex   int    `gorm:"not null"`
}
