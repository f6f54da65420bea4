package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string

	// AuthEnabled 为 true 时 /api/v1 需要 Bearer token
	AuthEnabled bool

	// 未保存设置时的默认单位
	MetricUnits    bool
	MetricDistance bool

	RateLimit       int
	RateLimitWindow time.Duration
}

// Load 加载配置
func Load() *Config {
	// .env 不存在时忽略
	_ = godotenv.Load()

	return &Config{
		Port:            getenvDefault("PORT", ":8080"),
		DBPath:          getenvDefault("DB_PATH", "./data/trips/trips.db"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AuthEnabled:     getenvBool("AUTH_ENABLED", false),
		MetricUnits:     getenvBool("METRIC_UNITS", false),
		MetricDistance:  getenvBool("METRIC_DISTANCE", false),
		RateLimit:       getenvInt("RATE_LIMIT", 120),
		RateLimitWindow: getenvDuration("RATE_LIMIT_WINDOW", time.Minute),
	}
}

// Validate 检查配置组合是否可用
func (c *Config) Validate() error {
	if c.AuthEnabled && c.JWTSecret == "" {
		return errors.New("AUTH_ENABLED requires JWT_SECRET")
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return b
}

func getenvInt(key string, def int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
