package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"sprout/internal/engine"
	"sprout/internal/plant"
)

// RunGarden runs the interactive session and flushes the plant on exit.
func RunGarden(ctx context.Context, svc *engine.Service, st *plant.State, out io.Writer) error {
	m := newGardenModel(ctx, svc, st)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, runErr := p.Run()
	if _, err := svc.Flush(ctx, st); err != nil && runErr == nil {
		return err
	}
	return runErr
}
