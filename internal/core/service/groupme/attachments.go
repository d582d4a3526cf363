package groupme

import (
	"fmt"
	"regexp"

	"github.com/sirupsen/logrus"

	"gm-bridge-bot/internal/core/errs"
	"gm-bridge-bot/internal/core/model"
	"gm-bridge-bot/logging"
)

type apiAttachment struct {
	Type        string   `json:"type"`
	URL         string   `json:"url"`
	Placeholder string   `json:"placeholder"`
	Charmap     [][]int  `json:"charmap"`
	Name        string   `json:"name"`
	Lat         string   `json:"lat"`
	Lng         string   `json:"lng"`
	Token       string   `json:"token"`
	ID          string   `json:"id"`
	FileID      string   `json:"file_id"`
	ReplyID     string   `json:"reply_id"`
	UserIDs     []string `json:"user_ids"`
	Loci        [][]int  `json:"loci"`
}

// Ссылки на картинки GroupMe заканчиваются 32-символьным идентификатором,
// перед которым стоит расширение файла.
var imageExtensionPattern = regexp.MustCompile(`(\w+)\.\w{32}$`)

// parseAttachments разбирает вложения сообщения. Вложение неизвестного типа
// пропускается с предупреждением и не валит остальную пачку; ошибка загрузки
// картинки или файла валит всё сообщение, потому что без содержимого
// пересылать его нет смысла.
func (c *Client) parseAttachments(raw apiMessage) ([]model.Attachment, error) {
	var attachments []model.Attachment

	for _, attachment := range raw.Attachments {
		switch attachment.Type {
		case "image":
			image, err := c.parseImageAttachment(attachment)
			if err != nil {
				return nil, err
			}
			attachments = append(attachments, image)
		case "file":
			file, err := c.parseFileAttachment(raw, attachment)
			if err != nil {
				return nil, err
			}
			attachments = append(attachments, file)
		case "video":
			attachments = append(attachments, model.VideoAttachment{URL: attachment.URL})
		case "emoji":
			attachments = append(attachments, model.EmojiAttachment{
				Placeholder: attachment.Placeholder,
				Charmap:     attachment.Charmap,
			})
		case "location":
			attachments = append(attachments, model.LocationAttachment{
				Name: attachment.Name,
				Lat:  attachment.Lat,
				Lng:  attachment.Lng,
			})
		case "split":
			attachments = append(attachments, model.SplitAttachment{Token: attachment.Token})
		case "reply":
			attachments = append(attachments, model.ReplyAttachment{ReplyID: attachment.ReplyID})
		case "mentions":
			attachments = append(attachments, model.MentionsAttachment{
				UserIDs: attachment.UserIDs,
				Loci:    attachment.Loci,
			})
		case "poll":
			attachments = append(attachments, model.PollAttachment{PollID: attachment.ID})
		case "event":
			attachments = append(attachments, model.EventAttachment{EventID: attachment.ID})
		default:
			logging.Log("GroupMe", logrus.WarnLevel, fmt.Sprintf("Вложение неизвестного типа %q пропущено", attachment.Type))
		}
	}

	return attachments, nil
}

func (c *Client) parseImageAttachment(attachment apiAttachment) (model.Attachment, error) {
	match := imageExtensionPattern.FindStringSubmatch(attachment.URL)
	if match == nil {
		return nil, errs.New(errs.KindParse, "не удалось определить расширение картинки из "+attachment.URL, c.Token)
	}

	data, err := c.File(attachment.URL)
	if err != nil {
		return nil, err
	}

	return model.ImageAttachment{Name: "GroupMeImage." + match[1], Data: data}, nil
}

func (c *Client) parseFileAttachment(raw apiMessage, attachment apiAttachment) (model.Attachment, error) {
	fileID := attachment.FileID
	if fileID == "" {
		fileID = attachment.ID
	}
	if fileID == "" {
		return nil, errs.New(errs.KindParse, "file-вложение без идентификатора файла")
	}

	fileURL := fmt.Sprintf("%s/%s/files/%s?token=%s", c.FileBaseURL, raw.GroupID, fileID, c.Token)

	data, err := c.File(fileURL)
	if err != nil {
		return nil, err
	}
	name, err := c.FileName(fileURL)
	if err != nil {
		return nil, err
	}

	return model.FileAttachment{Name: name, Data: data}, nil
}
