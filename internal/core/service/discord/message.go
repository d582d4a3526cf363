package discord

import (
	"bytes"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"gm-bridge-bot/internal/core/model"
)

// timestampTag — метка времени исходного сообщения в разметке Discord,
// добавляется перед текстом каждого фрагмента.
func timestampTag(message *model.Message) string {
	return fmt.Sprintf("[<t:%d>]   ", message.CreatedAt.Unix())
}

// buildContent возвращает текст сообщения с переведёнными эмодзи.
func buildContent(message *model.Message) string {
	return fillEmojiPlaceholders(message.Text, message.Attachments)
}

// buildEmbeds превращает видео-вложения в embeds Discord.
func buildEmbeds(message *model.Message) []*discordgo.MessageEmbed {
	var embeds []*discordgo.MessageEmbed
	for _, attachment := range message.Attachments {
		video, ok := attachment.(model.VideoAttachment)
		if !ok {
			continue
		}
		embeds = append(embeds, &discordgo.MessageEmbed{
			Type:  discordgo.EmbedTypeVideo,
			Title: "GroupMe Video",
			URL:   video.URL,
			Video: &discordgo.MessageEmbedVideo{URL: video.URL},
		})
	}
	return embeds
}

// buildFiles превращает скачанные картинки и файлы во вложения Discord.
func buildFiles(message *model.Message) []*discordgo.File {
	var files []*discordgo.File
	for _, attachment := range message.Attachments {
		switch a := attachment.(type) {
		case model.ImageAttachment:
			files = append(files, &discordgo.File{Name: a.Name, Reader: bytes.NewReader(a.Data)})
		case model.FileAttachment:
			files = append(files, &discordgo.File{Name: a.Name, Reader: bytes.NewReader(a.Data)})
		}
	}
	return files
}
