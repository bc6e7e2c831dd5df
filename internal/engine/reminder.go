package engine

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	// DefaultRemindInterval is how often the scheduler polls for due tasks.
	DefaultRemindInterval = 10 * time.Second
	// DefaultRemindWindow is how long past its due instant a task keeps
	// triggering reminders.
	DefaultRemindWindow = time.Minute
)

// SchedulerOptions tune the reminder poll. Zero values take the defaults.
type SchedulerOptions struct {
	Interval time.Duration
	Window   time.Duration
	// Once suppresses repeat reminders for a task while it stays in its due
	// window. Off by default: a due task re-fires on every tick and the
	// consumer decides when to dismiss.
	Once bool
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Scheduler polls the task collection and emits a reminder for every
// incomplete task inside its due window. It keeps no persistent notified
// state: a restart mid-window repeats the reminder.
type Scheduler struct {
	tasks      *TaskRepo
	onReminder func(Task)
	interval   time.Duration
	window     time.Duration
	once       bool
	now        func() time.Time
	notified   map[int64]bool
}

func NewScheduler(tasks *TaskRepo, onReminder func(Task), opts SchedulerOptions) *Scheduler {
	s := &Scheduler{
		tasks:      tasks,
		onReminder: onReminder,
		interval:   opts.Interval,
		window:     opts.Window,
		once:       opts.Once,
		now:        opts.Now,
	}
	if s.interval <= 0 {
		s.interval = DefaultRemindInterval
	}
	if s.window <= 0 {
		s.window = DefaultRemindWindow
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.once {
		s.notified = map[int64]bool{}
	}
	return s
}

// Run drives the poll until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick evaluates one poll cycle and invokes the callback for each due task.
func (s *Scheduler) Tick() {
	now := s.now()
	due := s.Due(now)
	log.WithField("due", len(due)).Debug("reminder tick")
	if s.onReminder == nil {
		return
	}
	for _, t := range due {
		s.onReminder(t)
	}
}

// Due returns the tasks eligible for a reminder at the given instant: not
// completed, dueDate parseable, and due <= now < due+window. With Once set,
// tasks already reminded stay excluded until they leave the window.
func (s *Scheduler) Due(now time.Time) []Task {
	var out []Task
	eligible := map[int64]bool{}
	for _, t := range s.tasks.List() {
		if t.Completed {
			continue
		}
		due, ok := ParseDueDate(t.DueDate)
		if !ok {
			continue
		}
		if due.After(now) || !due.After(now.Add(-s.window)) {
			continue
		}
		eligible[t.ID] = true
		if s.once {
			if s.notified[t.ID] {
				continue
			}
			s.notified[t.ID] = true
		}
		out = append(out, t)
	}

	// Forget tasks that left their window so a future due date can fire again.
	for id := range s.notified {
		if !eligible[id] {
			delete(s.notified, id)
		}
	}
	return out
}
