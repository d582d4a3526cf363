package groupme

import (
	"io"
	"strings"

	"gm-bridge-bot/internal/core/errs"
)

// File скачивает содержимое по прямой ссылке (картинки, файлы, аватары).
func (c *Client) File(fileURL string) ([]byte, error) {
	resp, err := c.HTTP.Get(fileURL)
	if err != nil {
		return nil, errs.New(errs.KindConnection, "не удалось подключиться к "+fileURL, c.Token)
	}
	defer resp.Body.Close()

	if err := c.statusError(resp.StatusCode, fileURL); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.New(errs.KindConnection, "обрыв чтения файла от "+fileURL, c.Token)
	}
	return data, nil
}

// FileName восстанавливает имя файла из заголовка content-disposition.
// Сервис отдаёт его в форме filename*=UTF-8''имя, берём часть после «''».
func (c *Client) FileName(fileURL string) (string, error) {
	resp, err := c.HTTP.Get(fileURL)
	if err != nil {
		return "", errs.New(errs.KindConnection, "не удалось подключиться к "+fileURL, c.Token)
	}
	defer resp.Body.Close()

	if err := c.statusError(resp.StatusCode, fileURL); err != nil {
		return "", err
	}

	disposition := resp.Header.Get("Content-Disposition")
	if disposition == "" {
		return "", errs.New(errs.KindParse, "нет заголовка content-disposition в ответе от "+fileURL, c.Token)
	}

	marker := strings.LastIndex(disposition, "''")
	if marker < 0 || marker+2 >= len(disposition) {
		return "", errs.New(errs.KindParse, "не удалось извлечь имя файла из "+disposition, c.Token)
	}
	return disposition[marker+2:], nil
}

// Avatar скачивает аватар пользователя: GroupMe отдаёт уменьшенную копию
// по исходной ссылке с суффиксом .avatar.
func (c *Client) Avatar(avatarURL string) ([]byte, error) {
	return c.File(avatarURL + ".avatar")
}
