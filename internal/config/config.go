package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/defff666/cryptodivebot/pkg/path"
	"github.com/joho/godotenv"
)

type IConfig interface {
	Get(key string) string
}

// Config resolves keys per environment: a key FOO is looked up as
// <ENV>_FOO first (DEV_FOO, TEST_FOO), matching the .env layout.
type Config struct {
	Key map[string]string
	Env string
}

func NewConfig(env string) (*Config, error) {
	env = strings.ToUpper(env)

	basePath, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := path.FindRoot(basePath, ".env", false)
	if err == nil {
		// Missing .env is fine in container deployments; real env vars win.
		_ = godotenv.Load(root + "/.env")
	}

	return &Config{
		Key: map[string]string{
			"POSTGRES_DB_NAME":   getEnv(env+"_POSTGRES_DB_NAME", ""),
			"POSTGRES_USER":      getEnv(env+"_POSTGRES_USER", ""),
			"POSTGRES_PASSWORD":  getEnv(env+"_POSTGRES_PASSWORD", ""),
			"POSTGRES_HOST":      getEnv(env+"_POSTGRES_HOST", "localhost"),
			"POSTGRES_PORT":      getEnv(env+"_POSTGRES_PORT", "5432"),
			"REDIS_HOST":         getEnv(env+"_REDIS_HOST", "localhost"),
			"REDIS_PORT":         getEnv(env+"_REDIS_PORT", "6379"),
			"TELEGRAM_BOT_TOKEN": getEnv("TELEGRAM_BOT_TOKEN", ""),
			"WEB_TOKEN_SECRET":   getEnv("WEB_TOKEN_SECRET", ""),
			"ADMIN_IDS":          getEnv("ADMIN_IDS", ""),
			"WEBAPP_URL":         getEnv("WEBAPP_URL", ""),
			"QUESTIONS_PATH":     getEnv("QUESTIONS_PATH", "data/questions.json"),
			"QUIZ_LENGTH":        getEnv("QUIZ_LENGTH", "5"),
			"BROADCAST_DELAY_MS": getEnv("BROADCAST_DELAY_MS", "500"),
			"PORT":               getEnv("PORT", "8080"),
		},
		Env: env,
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (c *Config) Get(key string) string {
	return c.Key[key]
}

func (c *Config) GetInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(c.Get(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// AdminIDs parses the comma-separated admin list; malformed entries are
// skipped rather than granting access by accident.
func (c *Config) AdminIDs() []int64 {
	var ids []int64
	for _, part := range strings.Split(c.Get("ADMIN_IDS"), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
