package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Processing ProcessingConfig
	Log        LogConfig
}

type AppConfig struct {
	ImageDir              string
	DefaultInputImage     string
	DefaultWatermarkImage string
}

type ProcessingConfig struct {
	JPEGQuality      int
	WatermarkOpacity float64
	FontSize         float64
	AutoOrient       bool
}

type LogConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			ImageDir:              getEnv("IMAGE_DIR", "./img"),
			DefaultInputImage:     getEnv("DEFAULT_INPUT_IMAGE", "test.jpg"),
			DefaultWatermarkImage: getEnv("DEFAULT_WATERMARK_IMAGE", "logo.png"),
		},
		Processing: ProcessingConfig{
			JPEGQuality:      min(100, max(1, getEnvAsInt("JPEG_QUALITY", 100))),
			WatermarkOpacity: min(1.0, max(0.0, getEnvAsFloat("WATERMARK_OPACITY", 0.5))),
			FontSize:         getEnvAsFloat("WATERMARK_FONT_SIZE", 32),
			AutoOrient:       getEnvAsBool("AUTO_ORIENT", true),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "warn"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if cfg.Processing.FontSize <= 0 {
		cfg.Processing.FontSize = 32
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultVal
}
