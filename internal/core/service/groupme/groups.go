package groupme

import (
	"encoding/json"
	"strconv"

	"gm-bridge-bot/internal/core/errs"
	"gm-bridge-bot/internal/core/model"
)

type apiGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Groups возвращает все группы, видимые владельцу токена,
// перебирая страницы до первой пустой.
func (c *Client) Groups() ([]*model.ChannelLink, error) {
	var groups []*model.ChannelLink

	for page := 1; ; page++ {
		body, err := c.get("groups", map[string]string{"page": strconv.Itoa(page)})
		if err != nil {
			return nil, err
		}

		var parsed struct {
			Response []apiGroup `json:"response"`
		}
		if err := json.Unmarshal(body, &parsed); err != nil {
			return nil, errs.New(errs.KindParse, "неожиданный формат списка групп: "+err.Error(), c.Token)
		}

		if len(parsed.Response) == 0 {
			return groups, nil
		}
		for _, group := range parsed.Response {
			groups = append(groups, model.NewChannelLink(group.ID, group.Name))
		}
	}
}

// GroupByName ищет группу по точному имени. Несколько совпадений — TooMany,
// ни одного — NotFound: обе ситуации разрешает пользователь, а не бот.
func (c *Client) GroupByName(name string) (*model.ChannelLink, error) {
	groups, err := c.Groups()
	if err != nil {
		return nil, err
	}

	var matches []*model.ChannelLink
	for _, group := range groups {
		if group.Name == name {
			matches = append(matches, group)
		}
	}

	if len(matches) > 1 {
		return nil, errs.Newf(errs.KindTooMany, "найдено несколько каналов с именем %q", name)
	}
	if len(matches) == 0 {
		return nil, errs.Newf(errs.KindNotFound, "канал %q не найден", name)
	}
	return matches[0], nil
}
