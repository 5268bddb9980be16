package main

import (
	"context"
	"time"

	calsvc "fvs_dash/internal/api/calendar/service"
	"fvs_dash/internal/logger"
)

// InitDefaultData hydrates the calendar engine from MongoDB. The server
// must not accept traffic before this completes: the in-memory store is
// the source of truth once loaded.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("Hydrating calendar engine from database...")

	service, err := calsvc.GetCalendarService()
	if err != nil {
		log.Fatalf("Failed to create calendar service: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pipelineCount, scheduledCount, err := service.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to hydrate calendar engine: %v", err)
	}

	log.WithFields(map[string]interface{}{
		"pipeline_items":  pipelineCount,
		"scheduled_items": scheduledCount,
	}).Info("Calendar engine hydrated")
}
