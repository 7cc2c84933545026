package session

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"scheduly/config"
	"scheduly/database"
	"scheduly/utils"
)

// NewStoreFromConfig picks the session backend named in configuration.
// Unknown names fall back to the in-memory store.
func NewStoreFromConfig() Store {
	logger := utils.GetLogger()
	ttl := time.Duration(config.AppConfig.SessionTimeoutHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	backend := strings.ToLower(config.AppConfig.SessionBackend)
	switch backend {
	case "redis":
		logger.Info("Using Redis session backend")
		return NewRedisStore(utils.GetSessionCacheClient(), ttl)
	case "database", "mongo":
		logger.Info("Using MongoDB session backend")
		return NewMongoStore(database.Collection("sessions"), ttl)
	case "memory", "":
		logger.Info("Using in-memory session backend")
		return NewMemoryStore(ttl)
	default:
		logger.Warn("Unknown session backend, falling back to memory", zap.String("backend", backend))
		return NewMemoryStore(ttl)
	}
}
