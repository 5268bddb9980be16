package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"fvs_dash/config"
	"fvs_dash/internal/calendar"
	"fvs_dash/internal/database"
	"fvs_dash/internal/global"
)

// InitGlobal initializes the global state in dependency order.
func InitGlobal() {
	initColNames()
	initValidator()
	initConfig()
	initDatabase_MongoDB()
}

// initColNames sets the collection names for the calendar domain.
func initColNames() {
	global.MongoDB_ColNames.CalendarPipelineItems = "calendar_pipeline_items"
	global.MongoDB_ColNames.CalendarScheduledItems = "calendar_scheduled_items"

	logrus.Info("Initialized collection names")
}

// initValidator registers the custom validators (no_xss, day_key,
// content_type, item_status, item_priority).
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig loads the server configuration from the env file and
// environment variables.
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB connects to MongoDB, ensures the collections exist
// and creates their indexes.
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	colNames := []string{
		global.MongoDB_ColNames.CalendarPipelineItems,
		global.MongoDB_ColNames.CalendarScheduledItems,
	}
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session, dbName, colNames); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.CalendarPipelineItems), calendar.PipelineItem{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.CalendarScheduledItems), calendar.ScheduledItem{})
}
