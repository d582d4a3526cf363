package groupme

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"gm-bridge-bot/internal/core/errs"
	"gm-bridge-bot/internal/core/model"
	"gm-bridge-bot/logging"
)

type apiMessage struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Name        string          `json:"name"`
	AvatarURL   string          `json:"avatar_url"`
	GroupID     string          `json:"group_id"`
	CreatedAt   int64           `json:"created_at"`
	Text        string          `json:"text"`
	System      bool            `json:"system"`
	Attachments []apiAttachment `json:"attachments"`
}

// MessagesSince возвращает все сообщения группы новее водяного знака привязки,
// от старых к новым. Любая ошибка прерывает выборку целиком: водяной знак
// при этом не трогается, следующий запуск повторит всё заново.
func (c *Client) MessagesSince(link *model.ChannelLink) ([]*model.Message, error) {
	logging.Log("GroupMe", logrus.InfoLevel, fmt.Sprintf("Выборка сообщений группы %s после ID %s", link.ID, link.LastMessageID))

	after := link.LastMessageID
	if after == "" {
		after = "0"
	}

	var all []*model.Message
	for {
		page, err := c.messagesAfter(link.ID, after)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			return all, nil
		}

		// Порядок сообщений внутри страницы не гарантирован,
		// сортируем по числовому ID и двигаем курсор на наибольший.
		sort.Slice(page, func(i, j int) bool {
			return compareMessageIDs(page[i].ID, page[j].ID) < 0
		})
		all = append(all, page...)
		after = page[len(page)-1].ID
	}
}

func (c *Client) messagesAfter(groupID, afterID string) ([]*model.Message, error) {
	body, err := c.get(fmt.Sprintf("groups/%s/messages", groupID), map[string]string{"after_id": afterID})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Response struct {
			Messages []apiMessage `json:"messages"`
		} `json:"response"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errs.New(errs.KindParse, "неожиданный формат списка сообщений: "+err.Error(), c.Token)
	}

	messages := make([]*model.Message, 0, len(parsed.Response.Messages))
	for _, raw := range parsed.Response.Messages {
		message, err := c.parseMessage(raw)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

func (c *Client) parseMessage(raw apiMessage) (*model.Message, error) {
	attachments, err := c.parseAttachments(raw)
	if err != nil {
		return nil, err
	}

	return &model.Message{
		ID: raw.ID,
		Member: model.Member{
			ID:        raw.UserID,
			Name:      raw.Name,
			AvatarURL: raw.AvatarURL,
		},
		GroupID:     raw.GroupID,
		CreatedAt:   time.Unix(raw.CreatedAt, 0),
		Text:        raw.Text,
		Attachments: attachments,
		System:      raw.System,
	}, nil
}

// compareMessageIDs сравнивает числовые строковые ID:
// более короткая строка — меньшее число.
func compareMessageIDs(a, b string) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return strings.Compare(a, b)
}
