// Package tui implements the interactive dashboard: live progress for
// every running strategy, system resource gauges and the final
// comparison, rendered with bubbletea.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/polymul/internal/cli"
	"github.com/agbru/polymul/internal/config"
	apperrors "github.com/agbru/polymul/internal/errors"
	"github.com/agbru/polymul/internal/format"
	"github.com/agbru/polymul/internal/multiplier"
	"github.com/agbru/polymul/internal/orchestration"
	"github.com/agbru/polymul/internal/progress"
	"github.com/agbru/polymul/internal/sysmon"
)

// sysmonInterval is the refresh period of the resource gauges.
const sysmonInterval = time.Second

// keyMap defines the dashboard key bindings.
type keyMap struct {
	Quit key.Binding
	Help key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Help, k.Quit}}
}

var defaultKeyMap = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}

// Messages delivered to the model.
type (
	progressMsg progress.Update
	resultsMsg  []orchestration.MultiplicationResult
	sysmonMsg   sysmon.Reading
	tickMsg     time.Time
)

// model is the bubbletea model of the dashboard.
type model struct {
	names      []string
	aggregator *orchestration.ProgressAggregator
	results    []orchestration.MultiplicationResult
	monitor    *sysmon.Monitor
	stats      sysmon.Reading
	spin       spinner.Model
	keys       keyMap
	help       help.Model
	styles     styles
	lenP, lenQ int
	started    time.Time
	done       bool
	exitCode   int
	cancel     context.CancelFunc
}

func newModel(names []string, lenP, lenQ int, cancel context.CancelFunc) model {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	return model{
		names:      names,
		aggregator: orchestration.NewProgressAggregator(len(names)),
		monitor:    sysmon.NewMonitor(),
		spin:       sp,
		keys:       defaultKeyMap,
		help:       help.New(),
		styles:     newStyles(),
		lenP:       lenP,
		lenQ:       lenQ,
		started:    time.Now(),
		exitCode:   apperrors.ExitErrorCanceled,
		cancel:     cancel,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.readSysmon, tick())
}

// readSysmon takes one smoothed reading from the shared monitor. The
// monitor is a pointer, so smoothing and peak state survive the value
// copies bubbletea makes of the model.
func (m model) readSysmon() tea.Msg {
	return sysmonMsg(m.monitor.Read())
}

func tick() tea.Cmd {
	return tea.Tick(sysmonInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.cancel()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case progressMsg:
		if m.aggregator != nil {
			m.aggregator.Update(progress.Update(msg))
		}
		return m, nil

	case resultsMsg:
		m.results = msg
		m.done = true
		m.exitCode = exitCodeFor(msg)
		return m, nil

	case sysmonMsg:
		m.stats = sysmon.Reading(msg)
		return m, nil

	case tickMsg:
		if m.done {
			return m, nil
		}
		return m, tea.Batch(m.readSysmon, tick())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("polymul · polynomial multiplication over Z/2^64"))
	b.WriteString("\n")
	b.WriteString(m.styles.label.Render(fmt.Sprintf("inputs: %s × %s coefficients",
		format.Count(m.lenP), format.Count(m.lenQ))))
	b.WriteString("\n\n")

	var rows []string
	for i, name := range m.names {
		rows = append(rows, m.renderRow(i, name))
	}
	b.WriteString(m.styles.frame.Render(strings.Join(rows, "\n")))
	b.WriteString("\n")

	gauges := m.stats
	label := "cpu"
	if m.done {
		// After completion the gauges freeze on the run's peaks.
		gauges = m.monitor.Peak()
		label = "peak cpu"
	}
	b.WriteString(m.styles.dim.Render(fmt.Sprintf("%s %5.1f%%   mem %5.1f%%   elapsed %s",
		label, gauges.CPUPercent, gauges.MemPercent,
		format.ExecutionDuration(time.Since(m.started).Round(time.Millisecond)))))
	b.WriteString("\n")

	if m.done {
		b.WriteString(m.renderSummary())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m model) renderRow(i int, name string) string {
	if m.done {
		for _, res := range m.results {
			if res.Name != name {
				continue
			}
			if res.Err != nil {
				return fmt.Sprintf("%-14s %s", name, m.styles.failure.Render("✗ "+res.Err.Error()))
			}
			return fmt.Sprintf("%-14s %s", name,
				m.styles.success.Render("✓ "+format.ExecutionDuration(res.Duration)))
		}
	}
	var v float64
	if m.aggregator != nil {
		v = m.aggregator.Value(i)
	}
	bar := cli.FormatProgressBar(v, 24)
	return fmt.Sprintf("%-14s %s %s %5.1f%%", name, m.spin.View(), m.styles.value.Render(bar), v*100)
}

func (m model) renderSummary() string {
	if !orchestration.ResultsConsistent(m.results) {
		return m.styles.failure.Render("results disagree between strategies")
	}
	for _, res := range m.results {
		if res.Err == nil {
			return m.styles.success.Render(fmt.Sprintf("consistent product of %s coefficients (press q to exit)",
				format.Count(len(res.Coefficients))))
		}
	}
	return m.styles.failure.Render("no strategy completed")
}

// exitCodeFor derives the process exit code from the collected results.
func exitCodeFor(results []orchestration.MultiplicationResult) int {
	if !orchestration.ResultsConsistent(results) {
		return apperrors.ExitErrorMismatch
	}
	var firstErr error
	for _, res := range results {
		if res.Err == nil {
			return apperrors.ExitSuccess
		}
		if firstErr == nil {
			firstErr = res.Err
		}
	}
	return apperrors.ExitCodeFor(firstErr)
}

// teaReporter forwards orchestration progress updates into the program.
type teaReporter struct {
	send func(tea.Msg)
}

// DisplayProgress implements orchestration.ProgressReporter.
func (r teaReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, _ int, _ io.Writer) {
	defer wg.Done()
	for update := range progressChan {
		r.send(progressMsg(update))
	}
}

// Run launches the dashboard, executes the selected strategies under it
// and returns the process exit code. The context bounds the computation;
// quitting the dashboard cancels it.
func Run(ctx context.Context, multipliers []multiplier.Multiplier, cfg config.AppConfig, p, q []uint64, rec orchestration.Recorder) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	names := make([]string, len(multipliers))
	for i, m := range multipliers {
		names[i] = m.Name()
	}

	prog := tea.NewProgram(newModel(names, len(p), len(q), cancel))

	go func() {
		results := orchestration.ExecuteMultiplications(ctx, multipliers, p, q,
			cfg.ToMultiplierOptions(), teaReporter{send: prog.Send}, io.Discard, rec)
		prog.Send(resultsMsg(results))
	}()

	final, err := prog.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := final.(model); ok {
		return m.exitCode
	}
	return apperrors.ExitErrorGeneric
}
