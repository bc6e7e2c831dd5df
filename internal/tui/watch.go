package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"daymark/internal/engine"
	"daymark/internal/ui"
)

// RunWatch opens the live dashboard: task board with progress plus reminder
// toasts driven by the scheduler's poll.
func RunWatch(ctx context.Context, svc *engine.Service, sched *engine.Scheduler, interval time.Duration, out io.Writer) error {
	m := newWatchModel(svc, sched, interval)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

type watchModel struct {
	svc      *engine.Service
	sched    *engine.Scheduler
	interval time.Duration

	width  int
	height int

	toasts   []engine.Task
	lastTick time.Time
}

type tickMsg time.Time

func newWatchModel(svc *engine.Service, sched *engine.Scheduler, interval time.Duration) watchModel {
	return watchModel{svc: svc, sched: sched, interval: interval}
}

func (m watchModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m watchModel) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		now := time.Time(msg)
		m.lastTick = now
		if due := m.sched.Due(now); len(due) > 0 {
			m.toasts = due
		}
		return m, m.tickCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "d":
			m.toasts = nil
			return m, nil
		}
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(ui.Heading(ui.IconBell, "Daymark — watching reminders"))
	b.WriteString("\n")
	b.WriteString(ui.LabelValue("User", m.svc.Identity()))
	b.WriteString("\n")
	b.WriteString(ui.LabelValue("Progress", ui.ProgressBar(m.svc.Progress(), 20)))
	b.WriteString("\n\n")

	b.WriteString(ui.H2.Render(ui.IconTask + " Pending"))
	b.WriteString("\n")
	pending := m.svc.Tasks().Pending()
	if len(pending) == 0 {
		b.WriteString(ui.Muted.Render("nothing pending"))
		b.WriteString("\n")
	}
	for _, t := range pending {
		b.WriteString(renderTaskLine(t))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	completed := m.svc.Tasks().Completed()
	if len(completed) > 0 {
		b.WriteString(ui.H2.Render(ui.IconDone + " Completed"))
		b.WriteString("\n")
		for _, t := range completed {
			b.WriteString(renderTaskLine(t))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	for _, t := range m.toasts {
		b.WriteString(ui.Toast.Render(renderToast(t)))
		b.WriteString("\n")
	}

	footer := "q quit · d dismiss"
	if !m.lastTick.IsZero() {
		footer += " · checked " + m.lastTick.Format("15:04:05")
	}
	b.WriteString(ui.Muted.Render(footer))
	b.WriteString("\n")
	return b.String()
}

func renderTaskLine(t engine.Task) string {
	line := fmt.Sprintf("%s #%d %s", ui.Checkbox(t.Completed), t.ID, t.Summary)
	if due, ok := engine.ParseDueDate(t.DueDate); ok {
		line += " " + ui.Muted.Render(ui.IconClock+" "+due.Format("Jan 2 15:04"))
	}
	return line
}

func renderToast(t engine.Task) string {
	msg := fmt.Sprintf("%s %s", ui.IconBell, ui.Warn.Render(t.Summary))
	if due, ok := engine.ParseDueDate(t.DueDate); ok {
		msg += ui.Muted.Render(" · due " + due.Format("15:04"))
	}
	return msg
}
