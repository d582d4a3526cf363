package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"gm-bridge-bot/logging"
)

type Config struct {
	GroupMeToken string
	DiscordToken string
	ServerID     string
	DataPath     string
	DatabasePath string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		logging.Log("Система", logrus.WarnLevel, "Файл .env не найден, используются переменные окружения")
	}

	config := &Config{
		GroupMeToken: os.Getenv("GROUPME_TOKEN"),
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		ServerID:     os.Getenv("SERVER_ID"),
		DataPath:     os.Getenv("DATA_PATH"),
		DatabasePath: os.Getenv("DATABASE_PATH"),
	}

	if config.GroupMeToken == "" {
		logging.Log("Система", logrus.PanicLevel, "Переменная окружения GROUPME_TOKEN не задана")
	}
	if config.DiscordToken == "" {
		logging.Log("Система", logrus.PanicLevel, "Переменная окружения DISCORD_TOKEN не задана")
	}
	if config.DataPath == "" {
		config.DataPath = "data"
	}
	if config.DatabasePath == "" {
		config.DatabasePath = "data/relay.db"
	}

	return config
}

// Secrets возвращает значения, которые нельзя выводить в логи и ответы.
func (c *Config) Secrets() []string {
	return []string{c.GroupMeToken, c.DiscordToken}
}
