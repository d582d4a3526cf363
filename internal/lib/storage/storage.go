package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"gm-bridge-bot/internal/core/errs"
	"gm-bridge-bot/internal/core/model"
	"gm-bridge-bot/logging"
)

// Storage хранит привязки каналов: один JSON-файл на каждый канал Discord,
// имя файла — ID канала.
type Storage struct {
	DataPath string
}

func NewStorage(dataPath string) *Storage {
	if err := os.MkdirAll(dataPath, 0755); err != nil {
		logging.Log("Хранилище", logrus.PanicLevel, fmt.Sprintf("Ошибка создания директории данных: %v", err))
	}

	return &Storage{DataPath: dataPath}
}

func (s *Storage) linkPath(discordChannelID string) string {
	return filepath.Join(s.DataPath, discordChannelID+".json")
}

// GetLink возвращает привязку канала Discord или nil, если канал не настроен.
func (s *Storage) GetLink(discordChannelID string) (*model.ChannelLink, error) {
	data, err := os.ReadFile(s.linkPath(discordChannelID))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var link model.ChannelLink
	if err := json.Unmarshal(data, &link); err != nil {
		return nil, errs.Newf(errs.KindParse, "повреждён файл привязки канала %s: %v", discordChannelID, err)
	}
	if link.LastMessageID == "" {
		link.LastMessageID = "0"
	}
	return &link, nil
}

// AddLink сохраняет новую привязку. На каждый канал Discord — не более одной.
func (s *Storage) AddLink(discordChannelID string, link *model.ChannelLink) error {
	existing, err := s.GetLink(discordChannelID)
	if err != nil {
		return err
	}
	if existing != nil {
		return errs.Newf(errs.KindConfiguration, "каналу %s уже назначен канал GroupMe", discordChannelID)
	}
	return s.SetLink(discordChannelID, link)
}

// SetLink записывает привязку, заменяя существующую.
func (s *Storage) SetLink(discordChannelID string, link *model.ChannelLink) error {
	data, err := json.Marshal(link)
	if err != nil {
		return err
	}
	return os.WriteFile(s.linkPath(discordChannelID), data, 0644)
}

// RemoveLink удаляет привязку канала.
func (s *Storage) RemoveLink(discordChannelID string) error {
	err := os.Remove(s.linkPath(discordChannelID))
	if os.IsNotExist(err) {
		return errs.Newf(errs.KindNotFound, "для канала %s привязка не найдена", discordChannelID)
	}
	return err
}
