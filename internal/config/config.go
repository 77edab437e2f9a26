package config

import (
	"os"
	"strconv"
)

// Config 应用配置
type Config struct {
	Port           string
	DBPath         string
	JWTSecret      string
	WalkGapMinutes float64 // inactivity threshold between photos of one walk
}

// Load 加载配置
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/colorwalk.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	gapMinutes := 300.0
	if v := os.Getenv("WALK_GAP_MINUTES"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			gapMinutes = parsed
		}
	}

	return &Config{
		Port:           port,
		DBPath:         dbPath,
		JWTSecret:      jwtSecret,
		WalkGapMinutes: gapMinutes,
	}
}
