package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	httpadapter "github.com/zeeshanarif5173/mywms-sub000/internal/adapter/http"
	"github.com/zeeshanarif5173/mywms-sub000/internal/adapter/http/handlers"
	httpmiddleware "github.com/zeeshanarif5173/mywms-sub000/internal/adapter/http/middleware"
	"github.com/zeeshanarif5173/mywms-sub000/internal/adapter/store"
	"github.com/zeeshanarif5173/mywms-sub000/internal/app/service"
	"github.com/zeeshanarif5173/mywms-sub000/internal/config"
	"github.com/zeeshanarif5173/mywms-sub000/internal/core/ports"
	"github.com/zeeshanarif5173/mywms-sub000/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()

	primary, db := buildPrimaryStore(cfg, logger)
	if db != nil {
		defer func() {
			if err := db.Close(); err != nil {
				logger.Warn("failed to close mysql connection", zap.Error(err))
			}
		}()
	}
	listStore := store.NewFallbackStore(primary, store.DefaultSeeds())

	taskRepository := store.NewTaskRepository(listStore)
	taskService := service.NewTaskService(taskRepository)
	recordService := service.NewRecordService(listStore)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if cfg.TrustedProxies != nil {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(cfg.StorageMode, db)
	taskHandler := handlers.NewTaskHandler(taskService)
	recordHandler := handlers.NewRecordHandler(recordService)
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler, recordHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server",
		zap.String("addr", addr),
		zap.String("storage_mode", string(cfg.StorageMode)),
	)
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}

// buildPrimaryStore selects the list-store strategy for this process. The
// stores never sniff their environment; the decision is made once, here.
func buildPrimaryStore(cfg *config.Config, logger *zap.Logger) (ports.ListStore, *sqlx.DB) {
	switch cfg.StorageMode {
	case config.StorageModeMySQL:
		db, err := store.ConnectDB(cfg)
		if err != nil {
			logger.Fatal("failed to connect to mysql", zap.Error(err))
		}
		sqlStore, err := store.NewSQLStore(db)
		if err != nil {
			logger.Fatal("failed to prepare mysql store", zap.Error(err))
		}
		return sqlStore, db
	case config.StorageModeMemory:
		return store.NewMemoryStore(), nil
	default:
		return store.NewFileStore(cfg.DataDir), nil
	}
}
