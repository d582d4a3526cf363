package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gm-bridge-bot/internal/lib/database/handlers"
	"gm-bridge-bot/internal/lib/database/handlers/relaymessage"
	modeldb "gm-bridge-bot/internal/lib/database/model"
	"gm-bridge-bot/logging"
)

func InitDB(dbFilePath string) *handlers.DBHandlers {
	// Создаем файл базы данных, если он не существует
	if _, err := os.Stat(dbFilePath); os.IsNotExist(err) {
		logging.Log("Database", logrus.InfoLevel, fmt.Sprintf("Создание базы данных по адресу: %s", dbFilePath))
		if err := os.MkdirAll(filepath.Dir(dbFilePath), 0755); err != nil {
			logging.Log("Database", logrus.PanicLevel, fmt.Sprintf("Ошибка создания директории базы данных: %v", err))
			return nil
		}
		file, err := os.Create(dbFilePath)
		if err != nil {
			logging.Log("Database", logrus.PanicLevel, fmt.Sprintf("Ошибка создания файла базы данных: %v", err))
			return nil
		}
		file.Close()
	}

	// Создание файла для логов запросов базы данных
	logFile, err := os.OpenFile("logs/db_queries.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logging.Log("Database", logrus.PanicLevel, fmt.Sprintf("Ошибка создания файла логов: %v", err))
		return nil
	}

	// Настройка GORM для логирования запросов в файл
	newLogger := logger.New(
		log.New(logFile, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dbFilePath), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		logging.Log("Database", logrus.PanicLevel, fmt.Sprintf("Ошибка подключения к базе данных: %v", err))
		return nil
	}

	// Автомиграция модели RelayMessage
	err = db.AutoMigrate(&modeldb.RelayMessage{})
	if err != nil {
		logging.Log("Database", logrus.PanicLevel, fmt.Sprintf("Ошибка автомиграции моделей: %v", err))
		return nil
	}

	// Инициализация хендлеров для работы с историей пересылки
	relayMessageHandler := relaymessage.NewHandlerDBRelayMessage(db)

	return &handlers.DBHandlers{
		DB:                   db,
		RelayMessageHandlers: relayMessageHandler,
	}
}
