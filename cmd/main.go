package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"bodylang-bot/config"
	telegram "bodylang-bot/internal/api"
	"bodylang-bot/internal/container"
	"bodylang-bot/internal/domain/scoring"
	"bodylang-bot/internal/infrastructure/storage"
	"bodylang-bot/internal/infrastructure/vision"
)

func main() {
	videoPath := flag.String("video", "", "проанализировать один видеофайл и вывести JSON")
	eyesOnly := flag.Bool("eyes", false, "в режиме -video вывести отчёт о контакте глаз")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	policy := scoring.DefaultPolicy()
	if cfg.AnalysisConfig != "" {
		policy, err = scoring.LoadPolicy(cfg.AnalysisConfig)
		if err != nil {
			log.Fatalf("Failed to load analysis policy: %v", err)
		}
	}

	pose, err := vision.NewGoCVPoseEstimator(cfg.PoseProtoPath, cfg.PoseModelPath)
	if err != nil {
		log.Fatalf("Failed to load pose model: %v", err)
	}
	defer pose.Close()

	// Собираем сервисы приложения
	userRepo := storage.NewMemoryUserRepository()
	appContainer := container.New(userRepo, vision.NewGoCVVideoSource(), pose, policy)

	// Разовый анализ из командной строки
	if *videoPath != "" {
		runOnce(appContainer, *videoPath, *eyesOnly)
		return
	}

	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_TOKEN is required")
	}

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	log.Println("Bot is running...")
	if err := bot.Run(); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}

// runOnce анализирует один файл и печатает результат в stdout.
func runOnce(c *container.Container, path string, eyesOnly bool) {
	ctx := context.Background()

	var result any
	var err error
	if eyesOnly {
		result, err = c.EyeContactService.AnalyzeVideo(ctx, path)
	} else {
		result, err = c.AnalysisService.AnalyzeVideo(ctx, path)
	}
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
}
