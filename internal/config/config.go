package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// StorageMode selects the primary list-store strategy at startup. The store
// itself never sniffs its environment; the hosting process decides here.
type StorageMode string

const (
	StorageModeMemory StorageMode = "memory"
	StorageModeFile   StorageMode = "file"
	StorageModeMySQL  StorageMode = "mysql"
)

type Config struct {
	AppPort        string
	StorageMode    StorageMode
	DataDir        string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	TrustedProxies []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		StorageMode:    parseStorageMode(os.Getenv("STORAGE_MODE")),
		DataDir:        getEnv("DATA_DIR", "data"),
		DbHost:         getEnv("MYSQL_HOST", "db"),
		DbPort:         getEnv("MYSQL_PORT", "3306"),
		DbUser:         getEnv("MYSQL_USER", "mywms"),
		DbPassword:     getEnv("MYSQL_PASSWORD", "mywms"),
		DbName:         getEnv("MYSQL_DATABASE", "mywms"),
		DbParams:       getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		TrustedProxies: parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseStorageMode(value string) StorageMode {
	switch StorageMode(strings.ToLower(strings.TrimSpace(value))) {
	case StorageModeMemory:
		return StorageModeMemory
	case StorageModeMySQL:
		return StorageModeMySQL
	default:
		return StorageModeFile
	}
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
