package model

// Attachment — вложение сообщения GroupMe. Конкретный вид определяется
// полем type в сыром JSON; каждый вариант несёт только свои поля.
type Attachment interface {
	attachment()
}

// ImageAttachment — картинка, байты уже скачаны.
type ImageAttachment struct {
	Name string
	Data []byte
}

// VideoAttachment — ссылка на видео, передаётся в Discord как embed.
type VideoAttachment struct {
	URL string
}

// FileAttachment — файл, скачанный по подписанной ссылке.
type FileAttachment struct {
	Name string
	Data []byte
}

// LocationAttachment — геометка.
type LocationAttachment struct {
	Name string
	Lat  string
	Lng  string
}

// EmojiAttachment — фирменные эмодзи GroupMe: символ-заполнитель в тексте
// и карта пар [набор, номер].
type EmojiAttachment struct {
	Placeholder string
	Charmap     [][]int
}

// SplitAttachment — токен разделения опроса.
type SplitAttachment struct {
	Token string
}

// MentionsAttachment — упоминания пользователей со смещениями в тексте.
type MentionsAttachment struct {
	UserIDs []string
	Loci    [][]int
}

// ReplyAttachment — ответ на другое сообщение.
type ReplyAttachment struct {
	ReplyID string
}

// PollAttachment — опрос.
type PollAttachment struct {
	PollID string
}

// EventAttachment — событие календаря.
type EventAttachment struct {
	EventID string
}

func (ImageAttachment) attachment()    {}
func (VideoAttachment) attachment()    {}
func (FileAttachment) attachment()     {}
func (LocationAttachment) attachment() {}
func (EmojiAttachment) attachment()    {}
func (SplitAttachment) attachment()    {}
func (MentionsAttachment) attachment() {}
func (ReplyAttachment) attachment()    {}
func (PollAttachment) attachment()     {}
func (EventAttachment) attachment()    {}
