package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "bodylang-bot/internal/application"
	"bodylang-bot/internal/container"
	"bodylang-bot/internal/domain/entity"
	"bodylang-bot/internal/domain/port"
	"bodylang-bot/internal/domain/scoring"
)

const (
	msgStart = `👋 Привет! Я бот-тренер языка тела для подготовки к собеседованиям.

🎥 Запишите видео с вашим ответом на вопрос интервью и отправьте его мне — я оценю осанку, положение головы, плечи, жесты и контакт глаз с камерой.

📋 Команды:
/analyze — начать анализ видео
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте видео с вашим ответом (MP4, до пары минут)
2️⃣ Бот проанализирует позу по кадрам
3️⃣ Вы получите оценку и рекомендации

💡 Рекомендации к съёмке:
• Снимайте при хорошем освещении
• Камера на уровне глаз, корпус в кадре по пояс
• Держитесь по центру кадра

📋 Команды:
/analyze — начать анализ
/cancel — отменить операцию`

	msgAwaitingVideo   = "🎥 Отправьте видео с вашим ответом для анализа языка тела."
	msgCancelled       = "❌ Операция отменена. Отправьте /analyze для нового анализа."
	msgSendVideo       = "🎥 Пожалуйста, отправьте видео для анализа языка тела."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Анализирую видео, это займёт немного времени..."
	msgUnreadable      = "⚠️ Не удалось прочитать видео. Проверьте формат (MP4/AVI/MOV) и попробуйте ещё раз."
	msgNoBody          = "⚠️ На видео не удалось найти человека ни в одном кадре. Снимите себя по пояс при хорошем освещении."
	msgProcessingError = "⚠️ Не удалось обработать видео. Попробуйте записать другое."
)

// Bot представляет Telegram-бота
type Bot struct {
	api      *tgbotapi.BotAPI
	users    *app.UserService
	analysis *app.AnalysisService
	eyes     *app.EyeContactService
}

// NewBot создаёт нового бота
func NewBot(token string, c *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:      api,
		users:    c.UserService,
		analysis: c.AnalysisService,
		eyes:     c.EyeContactService,
	}, nil
}

// Run запускает основной цикл обработки сообщений
func (b *Bot) Run() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	ctx := context.Background()

	for update := range updates {
		if update.Message == nil {
			continue
		}

		b.handleMessage(ctx, update.Message)
	}

	return nil
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	user, err := b.users.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		log.Printf("Error getting user: %v", err)
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	// Обработка видео
	if fileID, ok := videoFileID(msg); ok {
		b.handleVideo(ctx, msg, user, fileID)
		return
	}

	// Текстовое сообщение (не команда)
	b.sendMessage(msg.Chat.ID, msgSendVideo)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.users.Cancel(ctx, msg.From.ID, msg.Chat.ID)
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "analyze":
		b.users.BeginAnalysis(ctx, msg.From.ID, msg.Chat.ID)
		b.sendMessage(msg.Chat.ID, msgAwaitingVideo)

	case "cancel":
		b.users.Cancel(ctx, msg.From.ID, msg.Chat.ID)
		b.sendMessage(msg.Chat.ID, msgCancelled)

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// videoFileID достаёт идентификатор видеофайла из сообщения.
func videoFileID(msg *tgbotapi.Message) (string, bool) {
	switch {
	case msg.Video != nil:
		return msg.Video.FileID, true
	case msg.VideoNote != nil:
		return msg.VideoNote.FileID, true
	case msg.Document != nil && strings.HasPrefix(msg.Document.MimeType, "video/"):
		return msg.Document.FileID, true
	default:
		return "", false
	}
}

// handleVideo скачивает видео, прогоняет анализ и отвечает отчётом
func (b *Bot) handleVideo(ctx context.Context, msg *tgbotapi.Message, user *entity.User, fileID string) {
	b.users.SetState(ctx, user.ID, user.ChatID, entity.StateProcessing)

	b.sendMessage(msg.Chat.ID, msgProcessing)

	path, err := b.downloadToTemp(fileID)
	if err != nil {
		log.Printf("Error downloading video: %v", err)
		b.finish(ctx, msg.Chat.ID, user, msgProcessingError)
		return
	}
	defer os.Remove(path)

	result, err := b.analysis.AnalyzeVideo(ctx, path)
	switch {
	case errors.Is(err, port.ErrVideoUnreadable):
		b.finish(ctx, msg.Chat.ID, user, msgUnreadable)
		return
	case errors.Is(err, scoring.ErrInsufficientData):
		b.finish(ctx, msg.Chat.ID, user, msgNoBody)
		return
	case err != nil:
		log.Printf("Error analyzing video: %v", err)
		b.finish(ctx, msg.Chat.ID, user, msgProcessingError)
		return
	}

	// Контакт глаз — дополнение к основному отчёту; его сбой не фатален.
	eyeResult, err := b.eyes.AnalyzeVideo(ctx, path)
	if err != nil {
		log.Printf("Eye contact analysis skipped: %v", err)
	}

	b.finish(ctx, msg.Chat.ID, user, formatReport(result, eyeResult))
}

// finish отправляет ответ и возвращает пользователя в главное меню.
func (b *Bot) finish(ctx context.Context, chatID int64, user *entity.User, text string) {
	b.sendMessage(chatID, text)
	b.users.SetState(ctx, user.ID, user.ChatID, entity.StateMainMenu)
}

// formatReport собирает текстовый отчёт для пользователя.
func formatReport(res *entity.AnalysisResult, eye *entity.EyeContactResult) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📊 Язык тела: %.0f%% — %s\n", res.OverallScore*100, res.Assessment)
	fmt.Fprintf(&sb, "%s\n\n", res.Interpretation)
	fmt.Fprintf(&sb, "• Осанка: %.0f%%\n", res.Details.PostureScore*100)
	fmt.Fprintf(&sb, "• Плечи: %.0f%%\n", res.Details.ShoulderAlignmentScore*100)
	fmt.Fprintf(&sb, "• Голова: %.0f%%\n", res.Details.HeadPositionScore*100)
	fmt.Fprintf(&sb, "• Жесты: %.0f%%\n", res.Details.GestureScore*100)
	fmt.Fprintf(&sb, "Уверенность детекции: %.0f%% (кадров: %d)\n",
		res.Details.DetectionConfidence*100, res.Details.FramesAnalyzed)

	if eye != nil {
		fmt.Fprintf(&sb, "\n👁 Контакт глаз: %.0f%% — %s\n", eye.OverallScore*100, eye.Assessment)
	}

	sb.WriteString("\n💡 Рекомендации:\n")
	for _, rec := range res.Recommendations {
		fmt.Fprintf(&sb, "• %s\n", rec)
	}
	if eye != nil {
		for _, rec := range eye.Recommendations {
			fmt.Fprintf(&sb, "• %s\n", rec)
		}
	}

	return sb.String()
}

// downloadToTemp скачивает файл из Telegram во временный файл
func (b *Bot) downloadToTemp(fileID string) (string, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return "", fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(b.api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return "", fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	tmp, err := os.CreateTemp("", "bodylang-*.mp4")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("save file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}

	return tmp.Name(), nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}
