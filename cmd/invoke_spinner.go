package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type invokeDoneMsg struct {
	err error
}

type invokeSpinnerModel struct {
	spinner spinner.Model
	label   string
	invoke  tea.Cmd
	err     error
	done    bool
}

func newInvokeSpinnerModel(label string, invoke tea.Cmd) invokeSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("208"))),
	)

	return invokeSpinnerModel{
		spinner: s,
		label:   label,
		invoke:  invoke,
	}
}

func (m invokeSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.invoke)
}

func (m invokeSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case invokeDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m invokeSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

func runInvokeSpinner(ctx context.Context, output io.Writer, label string, invoke func(context.Context) error) error {
	invokeCmd := func() tea.Msg {
		return invokeDoneMsg{err: invoke(ctx)}
	}

	p := tea.NewProgram(
		newInvokeSpinnerModel(label, invokeCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(invokeSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
