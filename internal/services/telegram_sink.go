package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/terraincognita07/medlifequest/internal/models"
)

const defaultTelegramAPIBase = "https://api.telegram.org"

// TelegramReminderSink posts due reminders to a Telegram chat through the Bot
// API.
type TelegramReminderSink struct {
	botToken string
	chatID   string
	apiBase  string
	client   *http.Client
}

func NewTelegramReminderSink(botToken string, chatID string) (*TelegramReminderSink, error) {
	if strings.TrimSpace(botToken) == "" || strings.TrimSpace(chatID) == "" {
		return nil, errors.New("telegram bot token and chat id are required")
	}
	return &TelegramReminderSink{
		botToken: botToken,
		chatID:   chatID,
		apiBase:  defaultTelegramAPIBase,
		client: &http.Client{
			Timeout: 8 * time.Second,
		},
	}, nil
}

func (sink *TelegramReminderSink) Notify(ctx context.Context, reminder models.HealthReminder, dueAt time.Time) error {
	message := fmt.Sprintf("MedLifeQuest reminder (%s): %s at %s.",
		reminder.Type.Label(),
		reminder.Title,
		dueAt.Format("15:04"),
	)
	return sink.send(ctx, message)
}

func (sink *TelegramReminderSink) send(ctx context.Context, message string) error {
	values := url.Values{}
	values.Set("chat_id", sink.chatID)
	values.Set("text", message)

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", sink.apiBase, sink.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := sink.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
