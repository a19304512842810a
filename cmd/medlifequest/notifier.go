package main

import (
	"fmt"
	"log/slog"

	"github.com/terraincognita07/medlifequest/internal/api"
	"github.com/terraincognita07/medlifequest/internal/config"
	"github.com/terraincognita07/medlifequest/internal/services"
)

// newReminderNotifier returns nil when notifications are disabled. Due
// reminders always go to the log, and to Telegram when it is configured.
func newReminderNotifier(cfg *config.Config, handler *api.Handler, appLogger *slog.Logger) (*services.ReminderNotifier, error) {
	if !cfg.Notify.Enabled {
		return nil, nil
	}

	sinks := []services.ReminderSink{services.LogReminderSink{Logger: appLogger}}
	if cfg.Notify.TelegramEnabled() {
		telegram, err := services.NewTelegramReminderSink(cfg.Notify.TelegramToken, cfg.Notify.TelegramChatID)
		if err != nil {
			return nil, fmt.Errorf("telegram init failed: %w", err)
		}
		sinks = append(sinks, telegram)
	}

	return services.NewReminderNotifier(handler.ReminderSnapshot, sinks, services.ReminderNotifierOptions{
		Location: cfg.Location(),
		Interval: cfg.Notify.Interval,
		Logger:   appLogger,
	}), nil
}
