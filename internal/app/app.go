package app

import (
	"os"

	"go-sweldo/internal/bootstrap"
	"go-sweldo/internal/compensation"
	"go-sweldo/internal/holiday"
	"go-sweldo/internal/shared/connection"
	"go-sweldo/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp selects the storage backend, loads the holiday calendar, and
// wires every module onto the router. Backends are alternatives chosen by
// environment; only the file backend carries legacy CSV history.
func BuildApp(router *gin.Engine, auditLogger bootstrap.AuditLogger) error {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	var (
		recordStore store.RecordStore
		legacy      compensation.LegacyReader
	)
	switch os.Getenv("STORAGE_BACKEND") {
	case "redis":
		rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
		if err != nil {
			return err
		}
		zap.L().Info("document store connection established")
		recordStore = store.NewDocStore(rdb)
	default:
		fileStore := store.NewFileStore(dataDir)
		recordStore = fileStore
		legacy = fileStore
		zap.L().Info("file store selected", zap.String("dataDir", dataDir))
	}

	holidays := holiday.NewService(os.Getenv("HOLIDAYS_FILE"))

	registerModules(router, recordStore, legacy, holidays, auditLogger)
	return nil
}
