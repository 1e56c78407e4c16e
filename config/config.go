package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken  string
	PoseProtoPath  string // prototxt модели позы OpenPose
	PoseModelPath  string // caffemodel модели позы OpenPose
	AnalysisConfig string // путь к YAML с политикой анализа, опционально
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		PoseProtoPath:  getenv("POSE_PROTO", "models/pose_deploy.prototxt"),
		PoseModelPath:  getenv("POSE_MODEL", "models/pose_iter_440000.caffemodel"),
		AnalysisConfig: os.Getenv("ANALYSIS_CONFIG"),
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
