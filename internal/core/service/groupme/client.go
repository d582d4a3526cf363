package groupme

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"gm-bridge-bot/internal/core/errs"
)

const (
	defaultBaseURL     = "https://api.groupme.com/v3"
	defaultFileBaseURL = "https://file.groupme.com/v1"
)

// Client — клиент API GroupMe. Токен передаётся при создании и больше
// нигде не хранится; тексты ошибок очищаются от него.
type Client struct {
	Token       string
	HTTP        *http.Client
	BaseURL     string
	FileBaseURL string
}

func NewClient(token string) *Client {
	return &Client{
		Token:       token,
		HTTP:        http.DefaultClient,
		BaseURL:     defaultBaseURL,
		FileBaseURL: defaultFileBaseURL,
	}
}

func (c *Client) get(endpoint string, params map[string]string) ([]byte, error) {
	requestURL := fmt.Sprintf("%s/%s?token=%s", c.BaseURL, endpoint, c.Token)
	for key, value := range params {
		requestURL += "&" + key + "=" + url.QueryEscape(value)
	}

	resp, err := c.HTTP.Get(requestURL)
	if err != nil {
		return nil, errs.New(errs.KindConnection, "не удалось подключиться к "+requestURL, c.Token)
	}
	defer resp.Body.Close()

	if err := c.statusError(resp.StatusCode, requestURL); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.New(errs.KindConnection, "обрыв чтения ответа от "+requestURL, c.Token)
	}
	return body, nil
}

// statusError переводит HTTP-статус в категорию ошибки.
// https://dev.groupme.com/docs/responses
func (c *Client) statusError(status int, requestURL string) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized:
		return errs.New(errs.KindUnauthorized, "неверный токен: "+requestURL, c.Token)
	case status == http.StatusForbidden:
		return errs.New(errs.KindForbidden, "доступ запрещён: "+requestURL, c.Token)
	case status == http.StatusNotFound:
		return errs.New(errs.KindNotFound, "ресурс не найден: "+requestURL, c.Token)
	case status == 420:
		return errs.New(errs.KindRateLimited, "превышен лимит запросов: "+requestURL, c.Token)
	case status >= 500:
		return errs.New(errs.KindConnection, fmt.Sprintf("сервис GroupMe недоступен (статус %d): %s", status, requestURL), c.Token)
	default:
		return errs.New(errs.KindUncaught, fmt.Sprintf("неожиданный статус %d от %s", status, requestURL), c.Token)
	}
}
