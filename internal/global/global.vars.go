package global

import (
	"fvs_dash/config"
	"fvs_dash/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionName holds the MongoDB collection names used by the service.
type CollectionName struct {
	CalendarPipelineItems  string // Collection for undated pipeline ideas
	CalendarScheduledItems string // Collection for dated scheduled items
}

// Global variables.
var Validate *validator.Validate                        // Input validator
var MongoDB_Session *mongo.Client                       // MongoDB client session
var MongoDB_ServerConfig *config.Configuration          // Server configuration
var MongoDB_ColNames CollectionName = *new(CollectionName) // Collection names

// Registries.
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registered collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registered databases
