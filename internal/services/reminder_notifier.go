package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/medlifequest/internal/models"
)

const (
	DefaultReminderCheckInterval = 30 * time.Second
	// Failed deliveries are retried on later ticks until they are this old.
	maxReminderRetryAge = time.Hour
	maxSentReminderKeys = 500
)

// ReminderSink delivers one due reminder.
type ReminderSink interface {
	Notify(ctx context.Context, reminder models.HealthReminder, dueAt time.Time) error
}

// ReminderNotifier periodically looks for enabled reminders whose time of day
// fell since the previous check and hands each to every sink once per due day.
// Sinks are tracked separately, so one failing sink does not resend through the
// others.
type ReminderNotifier struct {
	reminders func() []models.HealthReminder
	sinks     []ReminderSink
	location  *time.Location
	now       func() time.Time
	interval  time.Duration
	logger    *slog.Logger

	mu        sync.Mutex
	lastCheck time.Time
	sent      map[deliveryKey]struct{}
	pending   map[deliveryKey]pendingDelivery
}

type deliveryKey struct {
	sink     int
	reminder string
}

type pendingDelivery struct {
	reminderID uuid.UUID
	dueAt      time.Time
	attempts   int
}

type ReminderNotifierOptions struct {
	Location *time.Location
	Interval time.Duration
	Clock    func() time.Time
	Logger   *slog.Logger
}

func NewReminderNotifier(reminders func() []models.HealthReminder, sinks []ReminderSink, options ReminderNotifierOptions) *ReminderNotifier {
	notifier := &ReminderNotifier{
		reminders: reminders,
		sinks:     sinks,
		location:  options.Location,
		now:       options.Clock,
		interval:  options.Interval,
		logger:    options.Logger,
		sent:      make(map[deliveryKey]struct{}),
		pending:   make(map[deliveryKey]pendingDelivery),
	}
	if notifier.location == nil {
		notifier.location = time.UTC
	}
	if notifier.now == nil {
		notifier.now = time.Now
	}
	if notifier.interval <= 0 {
		notifier.interval = DefaultReminderCheckInterval
	}
	if notifier.logger == nil {
		notifier.logger = slog.Default()
	}
	return notifier
}

// Start runs Check on every tick until ctx is done. The first check only
// records the starting instant, so reminders already past at startup are not
// replayed.
func (notifier *ReminderNotifier) Start(ctx context.Context) {
	notifier.Check(ctx)

	ticker := time.NewTicker(notifier.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				notifier.Check(ctx)
			}
		}
	}()
}

// Pending reports how many failed deliveries are waiting for a retry.
func (notifier *ReminderNotifier) Pending() int {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	return len(notifier.pending)
}

// Check retries pending deliveries, then dispatches the reminders that became
// due in (lastCheck, now]. It reports how many sink deliveries succeeded.
func (notifier *ReminderNotifier) Check(ctx context.Context) int {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()

	now := notifier.now().In(notifier.location)
	since := notifier.lastCheck
	notifier.lastCheck = now
	if since.IsZero() {
		return 0
	}

	reminders := notifier.reminders()
	current := make(map[uuid.UUID]models.HealthReminder, len(reminders))
	for _, reminder := range reminders {
		current[reminder.ID] = reminder
	}

	delivered := notifier.retryPending(ctx, current, now)
	for _, reminder := range reminders {
		if !reminder.Enabled {
			continue
		}
		dueAt, ok := dueBetween(reminder.Time, since, now)
		if !ok {
			continue
		}

		for index := range notifier.sinks {
			key := deliveryKey{sink: index, reminder: sentKey(reminder, dueAt)}
			if _, done := notifier.sent[key]; done {
				continue
			}
			if _, waiting := notifier.pending[key]; waiting {
				continue
			}
			if notifier.deliver(ctx, key, reminder, dueAt) {
				delivered++
				continue
			}
			notifier.pending[key] = pendingDelivery{reminderID: reminder.ID, dueAt: dueAt, attempts: 1}
		}
	}
	return delivered
}

// retryPending gives up on deliveries whose reminder was deleted, disabled or
// moved to another time, and on those older than maxReminderRetryAge.
func (notifier *ReminderNotifier) retryPending(ctx context.Context, current map[uuid.UUID]models.HealthReminder, now time.Time) int {
	delivered := 0
	for key, pending := range notifier.pending {
		reminder, ok := current[pending.reminderID]
		if !ok || !reminder.Enabled || !reminder.Time.On(pending.dueAt).Equal(pending.dueAt) {
			delete(notifier.pending, key)
			continue
		}
		if now.Sub(pending.dueAt) > maxReminderRetryAge {
			notifier.logger.Warn("reminder delivery abandoned",
				slog.String("reminder_id", reminder.ID.String()),
				slog.Int("attempts", pending.attempts),
			)
			delete(notifier.pending, key)
			continue
		}

		if notifier.deliver(ctx, key, reminder, pending.dueAt) {
			delete(notifier.pending, key)
			delivered++
			continue
		}
		pending.attempts++
		notifier.pending[key] = pending
	}
	return delivered
}

func (notifier *ReminderNotifier) deliver(ctx context.Context, key deliveryKey, reminder models.HealthReminder, dueAt time.Time) bool {
	if err := notifier.sinks[key.sink].Notify(ctx, reminder, dueAt); err != nil {
		notifier.logger.Warn("reminder delivery failed",
			slog.String("reminder_id", reminder.ID.String()),
			slog.Int("sink", key.sink),
			slog.String("error", err.Error()),
		)
		return false
	}

	if len(notifier.sent) >= maxSentReminderKeys {
		clear(notifier.sent)
	}
	notifier.sent[key] = struct{}{}
	return true
}

// dueBetween finds an occurrence of value in (since, now], checking today and
// yesterday so a window spanning midnight is covered.
func dueBetween(value models.TimeOfDay, since time.Time, now time.Time) (time.Time, bool) {
	for _, day := range []time.Time{now, now.AddDate(0, 0, -1)} {
		candidate := value.On(day)
		if candidate.After(since) && !candidate.After(now) {
			return candidate, true
		}
	}
	return time.Time{}, false
}

// sentKey is per day for daily reminders and per reminder for one-off ones,
// which fire at most once.
func sentKey(reminder models.HealthReminder, dueAt time.Time) string {
	if !reminder.RepeatDaily {
		return reminder.ID.String()
	}
	return reminder.ID.String() + ":" + dueAt.Format(time.DateOnly)
}

// LogReminderSink writes due reminders to the structured log.
type LogReminderSink struct {
	Logger *slog.Logger
}

func (sink LogReminderSink) Notify(_ context.Context, reminder models.HealthReminder, dueAt time.Time) error {
	sink.Logger.Info("reminder due",
		slog.String("reminder_id", reminder.ID.String()),
		slog.String("title", reminder.Title),
		slog.String("type", string(reminder.Type)),
		slog.Time("due_at", dueAt),
	)
	return nil
}
