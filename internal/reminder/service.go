package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/model"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/repository"
	pkgLog "github.com/Rudra-Tiwari-codes/Calendar-test/pkg/log"
)

// Notifier is the slice of the Telegram bot the reminder service needs.
type Notifier interface {
	SendMessage(chatID int64, text string) error
}

// Service delivers due reminders on a fixed polling cadence.
type Service struct {
	l        pkgLog.Logger
	repo     repository.Repository
	notifier Notifier
	interval time.Duration

	now func() time.Time
}

// New creates the reminder service.
func New(l pkgLog.Logger, repo repository.Repository, notifier Notifier, interval time.Duration) *Service {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Service{
		l:        l,
		repo:     repo,
		notifier: notifier,
		interval: interval,
		now:      time.Now,
	}
}

// Run polls for due reminders until the context is cancelled.
func (s *Service) Run(ctx context.Context) {
	s.l.Infof(ctx, "reminder service started, polling every %s", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.l.Info(ctx, "reminder service stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep delivers every reminder that has come due. Failures are retried on
// later sweeps up to the retry cap.
func (s *Service) Sweep(ctx context.Context) {
	due, err := s.repo.GetDueReminders(ctx, s.now())
	if err != nil {
		s.l.Errorf(ctx, "reminder.Sweep.GetDueReminders: %v", err)
		return
	}

	for _, r := range due {
		if err := s.deliver(ctx, r); err != nil {
			s.l.Warnf(ctx, "reminder.Sweep: delivery failed for reminder %d: %v", r.ID, err)

			if r.Retries+1 >= model.MaxReminderRetries {
				// Give up rather than spam failed sends forever.
				s.l.Errorf(ctx, "reminder.Sweep: giving up on reminder %d after %d attempts", r.ID, r.Retries+1)
				if err := s.repo.MarkReminderSent(ctx, r.ID); err != nil {
					s.l.Errorf(ctx, "reminder.Sweep.MarkReminderSent: %v", err)
				}
				continue
			}
			if err := s.repo.IncrementReminderRetries(ctx, r.ID); err != nil {
				s.l.Errorf(ctx, "reminder.Sweep.IncrementReminderRetries: %v", err)
			}
			continue
		}

		if err := s.repo.MarkReminderSent(ctx, r.ID); err != nil {
			s.l.Errorf(ctx, "reminder.Sweep.MarkReminderSent: %v", err)
		}
	}
}

func (s *Service) deliver(ctx context.Context, r model.Reminder) error {
	ev, err := s.repo.GetEventByGoogleID(ctx, r.GoogleEventID)
	if err != nil {
		return err
	}
	if ev.GoogleEventID == "" {
		// Event was deleted after the reminder was scheduled; drop silently.
		return nil
	}

	text := fmt.Sprintf("⏰ Reminder: %s starts at %s",
		ev.Title, ev.StartTime.Format("Mon 2 Jan 3:04pm"))
	return s.notifier.SendMessage(r.ChatID, text)
}
