package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sprout/internal/engine"
	"sprout/internal/plant"
	"sprout/internal/ui"
)

// statusHold is how long a status line stays before the prompt returns.
const statusHold = 2 * time.Second

// gardenModel mutates the plant only from Update, so ticks and completions
// never interleave.
type gardenModel struct {
	ctx   context.Context
	svc   *engine.Service
	plant *plant.State

	width  int
	height int

	input     string
	status    string
	statusSeq int
	err       error
}

type tickMsg time.Time

type statusExpiredMsg struct {
	seq int
}

func newGardenModel(ctx context.Context, svc *engine.Service, st *plant.State) gardenModel {
	m := gardenModel{
		ctx:    ctx,
		svc:    svc,
		plant:  st,
		status: engine.MsgPrompt,
	}
	if st.DailyGoalMet {
		m.status = engine.MsgComeBackTomorrow
	}
	return m
}

func (m gardenModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m gardenModel) tickCmd() tea.Cmd {
	return tea.Tick(m.svc.TickInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m gardenModel) expireCmd(seq int) tea.Cmd {
	return tea.Tick(statusHold, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

// setStatus shows msg; it reverts to the prompt unless the day is done.
func (m gardenModel) setStatus(msg string) (gardenModel, tea.Cmd) {
	m.status = msg
	m.statusSeq++
	if m.plant.DailyGoalMet {
		return m, nil
	}
	return m, m.expireCmd(m.statusSeq)
}

func (m gardenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if _, err := m.svc.Tick(m.ctx, m.plant); err != nil {
			m.err = err
		}
		return m, m.tickCmd()
	case statusExpiredMsg:
		if msg.seq == m.statusSeq && !m.plant.DailyGoalMet {
			m.status = engine.MsgPrompt
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m gardenModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeyEnter:
		return m.submit()
	case tea.KeySpace:
		if !m.plant.DailyGoalMet {
			m.input += " "
		}
		return m, nil
	case tea.KeyRunes:
		if !m.plant.DailyGoalMet {
			m.input += string(msg.Runes)
		}
		return m, nil
	}
	return m, nil
}

func (m gardenModel) submit() (tea.Model, tea.Cmd) {
	if m.plant.DailyGoalMet {
		return m, nil
	}
	label := m.input
	res, err := m.svc.CompleteTask(m.ctx, m.plant, label)
	if errors.Is(err, engine.ErrEmptyTask) {
		return m.setStatus(engine.MsgEmptyTask)
	}
	if err != nil {
		m.err = err
		return m, nil
	}
	m.input = ""
	m.err = nil
	return m.setStatus(res.Message)
}

func (m gardenModel) View() string {
	var b strings.Builder

	b.WriteString(ui.Heading(ui.IconSprout, "Sprout"))
	b.WriteString("  ")
	b.WriteString(ui.Gold.Render(fmt.Sprintf("%s %d", ui.IconStreak, m.plant.Streak)))
	if m.plant.DailyGoalMet {
		b.WriteString("  " + ui.BadgeGoalMet)
	}
	b.WriteString("\n\n")

	tier := plant.TierFor(m.plant.Hydration)
	panel := strings.Join([]string{
		ui.PanelTitle.Render("Your plant is " + tier.String()),
		ui.PlantArt(m.plant.Hydration),
		"",
		ui.LabelValue(ui.IconDroplet+" Hydration", ui.HydrationLine(m.plant.Hydration, 20)),
		ui.LabelValue(ui.IconDone+" Today", ui.TasksLine(m.plant.TasksCompletedToday, 20)),
	}, "\n")
	b.WriteString(ui.Panel.Render(panel))
	b.WriteString("\n\n")

	b.WriteString(m.status)
	b.WriteString("\n")
	if m.plant.DailyGoalMet {
		b.WriteString(ui.Muted.Render("> " + engine.MsgComeBackTomorrow))
	} else {
		b.WriteString("> " + m.input + ui.Muted.Render("_"))
	}
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(ui.Bad.Render(ui.IconError+" "+m.err.Error()) + "\n")
	}
	b.WriteString(ui.Muted.Render("enter: complete task • esc/ctrl+c: quit"))
	b.WriteString("\n")
	return b.String()
}
