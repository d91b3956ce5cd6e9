package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/polymul/internal/errors"
	"github.com/agbru/polymul/internal/orchestration"
	"github.com/agbru/polymul/internal/progress"
)

func testModel() model {
	_, cancel := context.WithCancel(context.Background())
	return newModel([]string{"Radix-3 FFT", "Schoolbook"}, 10, 20, cancel)
}

func TestModelProgressUpdates(t *testing.T) {
	m := testModel()
	next, _ := m.Update(progressMsg(progress.Update{MultiplierIndex: 0, Value: 0.5}))
	m = next.(model)
	if got := m.aggregator.Value(0); got != 0.5 {
		t.Errorf("progress = %f, want 0.5", got)
	}
	view := m.View()
	if !strings.Contains(view, "Radix-3 FFT") {
		t.Errorf("view missing strategy name: %q", view)
	}
}

func TestModelResults(t *testing.T) {
	m := testModel()
	results := []orchestration.MultiplicationResult{
		{Name: "Radix-3 FFT", Coefficients: []uint64{1, 2, 1}},
		{Name: "Schoolbook", Coefficients: []uint64{1, 2, 1}},
	}
	next, _ := m.Update(resultsMsg(results))
	m = next.(model)
	if !m.done {
		t.Error("model not done after results")
	}
	if m.exitCode != apperrors.ExitSuccess {
		t.Errorf("exit code = %d", m.exitCode)
	}
	view := m.View()
	if !strings.Contains(view, "consistent product") {
		t.Errorf("summary missing: %q", view)
	}
}

func TestModelQuitCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := newModel([]string{"x"}, 1, 1, cancel)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if ctx.Err() == nil {
		t.Error("quit did not cancel the computation context")
	}
}

func TestExitCodeFor(t *testing.T) {
	ok := []orchestration.MultiplicationResult{
		{Name: "a", Coefficients: []uint64{1}},
	}
	if got := exitCodeFor(ok); got != apperrors.ExitSuccess {
		t.Errorf("success: %d", got)
	}

	mismatch := []orchestration.MultiplicationResult{
		{Name: "a", Coefficients: []uint64{1}},
		{Name: "b", Coefficients: []uint64{2}},
	}
	if got := exitCodeFor(mismatch); got != apperrors.ExitErrorMismatch {
		t.Errorf("mismatch: %d", got)
	}

	failed := []orchestration.MultiplicationResult{
		{Name: "a", Err: errors.New("boom")},
	}
	if got := exitCodeFor(failed); got != apperrors.ExitErrorGeneric {
		t.Errorf("failed: %d", got)
	}
}
