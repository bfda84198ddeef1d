package usecase

import (
	"time"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/event"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/repository"
	pkgLog "github.com/Rudra-Tiwari-codes/Calendar-test/pkg/log"
)

type implUseCase struct {
	l               pkgLog.Logger
	repo            repository.Repository
	calendars       event.CalendarFactory
	defaultTimezone string
	reminderLead    time.Duration

	// now is swapped in tests to pin the reference instant.
	now func() time.Time
}

// New creates a new event UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	calendars event.CalendarFactory,
	defaultTimezone string,
	reminderLead time.Duration,
) *implUseCase {
	return &implUseCase{
		l:               l,
		repo:            repo,
		calendars:       calendars,
		defaultTimezone: defaultTimezone,
		reminderLead:    reminderLead,
		now:             time.Now,
	}
}
