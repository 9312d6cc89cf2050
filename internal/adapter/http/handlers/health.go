package handlers

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/zeeshanarif5173/mywms-sub000/internal/adapter/http/middleware"
	"github.com/zeeshanarif5173/mywms-sub000/internal/config"
)

const (
	StatusOk        = "ok"
	StatusDown      = "down"
	healthDBTimeout = 2 * time.Second
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	StorageMode string `json:"storage_mode"`
	Storage     string `json:"storage"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
}

// HealthHandler reports liveness. db is nil outside mysql mode; the memory
// and file stores have no connection to probe.
type HealthHandler struct {
	mode config.StorageMode
	db   *sqlx.DB
}

func NewHealthHandler(mode config.StorageMode, db *sqlx.DB) *HealthHandler {
	return &HealthHandler{mode: mode, db: db}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := 200
	message := StatusOk

	if !h.storageHealthy(c.Request.Context()) {
		statusCode = 500
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	storageStatus := StatusDown
	if h.storageHealthy(c.Request.Context()) {
		storageStatus = StatusOk
	}

	c.JSON(200, HealthAdvanced{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		Status: HealthServices{
			StorageMode: string(h.mode),
			Storage:     storageStatus,
		},
	})
}

func (h *HealthHandler) storageHealthy(ctx context.Context) bool {
	if h.mode != config.StorageModeMySQL {
		return true
	}
	if h.db == nil {
		return false
	}
	// Avoid hanging health checks if the database stalls.
	timeoutCtx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()
	return h.db.PingContext(timeoutCtx) == nil
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
