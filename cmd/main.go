package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"gm-bridge-bot/config"
	"gm-bridge-bot/internal/core/service/discord"
	"gm-bridge-bot/internal/core/service/groupme"
	"gm-bridge-bot/internal/core/service/relay"
	"gm-bridge-bot/internal/lib/database"
	"gm-bridge-bot/internal/lib/storage"
	"gm-bridge-bot/logging"
)

func main() {
	logger := logging.SetupLogger()
	logger.Info("gm-bridge-bot")

	configData := config.LoadConfig()
	logging.SetSecrets(configData.Secrets())

	storageData := storage.NewStorage(configData.DataPath)
	dbHandlers := database.InitDB(configData.DatabasePath)
	groupMeClient := groupme.NewClient(configData.GroupMeToken)

	discordBot, err := discord.NewDiscordBot(configData, storageData, dbHandlers, groupMeClient)
	if err != nil {
		logging.Log("Discord", logrus.PanicLevel, fmt.Sprintf("%v", err))
	}

	relayer := relay.NewRelayer(groupMeClient, discordBot, storageData, dbHandlers.RelayMessageHandlers)
	discordBot.SetRelayer(relayer)

	logging.Log("Система", logrus.InfoLevel, "Бот приступил к работе...")
	select {}
}
