package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/arena/printer"
	"github.com/joshuapare/heapkit/internal/logger"
	"github.com/joshuapare/heapkit/internal/scenario"
	"github.com/joshuapare/heapkit/pkg/heap"
)

const historyLines = 5

var (
	primaryColor = lipgloss.Color("#7D56F4")
	successColor = lipgloss.Color("#04B575")
	errorColor   = lipgloss.Color("#FF4B4B")
	mutedColor   = lipgloss.Color("#666666")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	okStyle   = lipgloss.NewStyle().Foreground(successColor)
	errStyle  = lipgloss.NewStyle().Foreground(errorColor)
	dimStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)
)

func init() {
	rootCmd.AddCommand(newExploreCmd())
}

func newExploreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore <scenario.yaml>",
		Short: "Step through a scenario interactively",
		Long: `The explore command opens a terminal UI that runs one scenario step
per key press and redraws the arena after each one.

Keys:
  n, space, enter   Run the next step
  a                 Run all remaining steps
  ?                 Toggle help
  q, esc            Quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(args)
		},
	}
	return cmd
}

func runExplore(args []string) error {
	sc, err := scenario.Load(appFs, args[0])
	if err != nil {
		return err
	}
	h := heap.New(sc.HeapOptions(heapOptions()))
	defer h.Close()

	m, err := newExploreModel(h, sc, args[0])
	if err != nil {
		return err
	}

	logger.Info("starting explore", "path", args[0], "steps", len(sc.Steps))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("explore: %w", err)
	}
	return nil
}

// exploreModel is the bubbletea model for the explore command.
type exploreModel struct {
	name    string
	runner  *scenario.Runner
	opts    printer.Options
	history []scenario.StepResult
	keys    exploreKeyMap
	help    help.Model
	width   int
}

func newExploreModel(h *heap.Heap, sc *scenario.Scenario, name string) (exploreModel, error) {
	r, err := scenario.NewRunner(h, sc)
	if err != nil {
		return exploreModel{}, err
	}
	opts := printer.DefaultOptions()
	opts.Color = !noColor
	return exploreModel{
		name:   name,
		runner: r,
		opts:   opts,
		keys:   defaultExploreKeyMap(),
		help:   help.New(),
	}, nil
}

func (m exploreModel) Init() tea.Cmd { return nil }

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		// Leave room for the pane border and padding.
		m.opts.Width = max(msg.Width-6, 10)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Step):
			m = m.step()
		case key.Matches(msg, m.keys.RunAll):
			for !m.runner.Done() {
				m = m.step()
			}
		}
	}
	return m, nil
}

func (m exploreModel) step() exploreModel {
	res, ok := m.runner.Step()
	if !ok {
		return m
	}
	m.history = append(m.history, res)
	if len(m.history) > historyLines {
		m.history = m.history[len(m.history)-historyLines:]
	}
	return m
}

func (m exploreModel) View() string {
	var b strings.Builder

	total := len(m.runner.Result().Steps) + m.runner.Remaining()
	b.WriteString(headerStyle.Render(fmt.Sprintf("heapctl explore: %s", m.name)))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  step %d/%d", len(m.runner.Result().Steps), total)))
	b.WriteString("\n")

	var vis strings.Builder
	if err := printer.New(&vis, m.opts).Overview(m.runner.Heap().Snapshot()); err != nil {
		vis.WriteString(errStyle.Render(err.Error()))
	}
	b.WriteString(paneStyle.Render(strings.Trim(vis.String(), "\n")))
	b.WriteString("\n")

	if len(m.history) == 0 {
		b.WriteString(dimStyle.Render("no steps run yet") + "\n")
	}
	for _, res := range m.history {
		if res.OK() {
			b.WriteString(okStyle.Render(res.String()) + "\n")
		} else {
			b.WriteString(errStyle.Render(res.String()) + "\n")
		}
	}
	if m.runner.Done() {
		b.WriteString(dimStyle.Render("scenario complete") + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}
