package model

import "time"

// Member — автор сообщения в GroupMe.
type Member struct {
	ID        string
	Name      string
	AvatarURL string
}

// Message — одно сообщение из канала GroupMe.
type Message struct {
	ID          string
	Member      Member
	GroupID     string
	CreatedAt   time.Time
	Text        string
	Attachments []Attachment
	System      bool
}

// ChannelLink — привязка канала GroupMe к каналу Discord.
// LastMessageID — ID последнего успешно пересланного сообщения,
// "0" означает «с самого начала».
type ChannelLink struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	LastMessageID string `json:"lastMessageID"`
}

func NewChannelLink(id, name string) *ChannelLink {
	return &ChannelLink{ID: id, Name: name, LastMessageID: "0"}
}
