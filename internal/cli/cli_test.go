package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	apperrors "github.com/agbru/polymul/internal/errors"
	"github.com/agbru/polymul/internal/metrics"
	"github.com/agbru/polymul/internal/orchestration"
	"github.com/agbru/polymul/internal/progress"
	"github.com/agbru/polymul/internal/ui"
)

func TestMain(m *testing.M) {
	// Deterministic, color-free output for assertions.
	ui.InitTheme(true)
	os.Exit(m.Run())
}

func TestFormatProgressBar(t *testing.T) {
	if got := FormatProgressBar(0, 4); got != "░░░░" {
		t.Errorf("0%%: %q", got)
	}
	if got := FormatProgressBar(0.5, 4); got != "██░░" {
		t.Errorf("50%%: %q", got)
	}
	if got := FormatProgressBar(1, 4); got != "████" {
		t.Errorf("100%%: %q", got)
	}
	// Out-of-range values are clamped.
	if got := FormatProgressBar(1.5, 4); got != "████" {
		t.Errorf("150%%: %q", got)
	}
	if got := FormatProgressBar(-0.5, 4); got != "░░░░" {
		t.Errorf("-50%%: %q", got)
	}
}

func TestDisplayCoefficientsShort(t *testing.T) {
	var buf bytes.Buffer
	DisplayCoefficients([]uint64{1, 2, ^uint64(0)}, false, &buf)
	got := strings.TrimSpace(buf.String())
	if got != "1 2 -1" {
		t.Errorf("output = %q", got)
	}
}

func TestDisplayCoefficientsTruncated(t *testing.T) {
	coeffs := make([]uint64, 1000)
	for i := range coeffs {
		coeffs[i] = uint64(i)
	}
	var buf bytes.Buffer
	DisplayCoefficients(coeffs, false, &buf)
	out := buf.String()
	if !strings.Contains(out, "omitted") {
		t.Errorf("long output not truncated: %q", out)
	}
	if !strings.HasPrefix(out, "0 1 2") {
		t.Errorf("leading edge missing: %q", out)
	}
	if !strings.Contains(out, "999") {
		t.Errorf("trailing edge missing: %q", out)
	}

	buf.Reset()
	DisplayCoefficients(coeffs, true, &buf)
	if strings.Contains(buf.String(), "omitted") {
		t.Error("full display should not truncate")
	}
}

func TestWriteCoefficientsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "product.txt")
	coeffs := []uint64{1, ^uint64(0), 42}
	if err := WriteCoefficientsToFile(path, coeffs, "Radix-3 FFT", time.Millisecond); err != nil {
		t.Fatalf("WriteCoefficientsToFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "# Algorithm: Radix-3 FFT") {
		t.Errorf("header missing: %q", content)
	}
	if !strings.Contains(content, "1 -1 42") {
		t.Errorf("coefficients missing: %q", content)
	}
}

func TestWriteCoefficientsToFileEmptyPath(t *testing.T) {
	if err := WriteCoefficientsToFile("", []uint64{1}, "x", 0); err != nil {
		t.Errorf("empty path should be a no-op, got %v", err)
	}
}

func TestPresentComparisonTable(t *testing.T) {
	results := []orchestration.MultiplicationResult{
		{Name: "Radix-3 FFT", Coefficients: []uint64{1}, Duration: 3 * time.Millisecond},
		{Name: "Schoolbook", Err: errors.New("boom"), Duration: time.Second},
	}
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)
	out := buf.String()
	for _, want := range []string{"Comparison Summary", "Radix-3 FFT", "3ms", "Success", "Schoolbook", "Failure", "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q: %q", want, out)
		}
	}
}

func TestPresentResult(t *testing.T) {
	res := orchestration.MultiplicationResult{
		Name:         "Radix-3 FFT",
		Coefficients: []uint64{1, 2, 1},
		Duration:     time.Millisecond,
	}
	var buf bytes.Buffer
	CLIResultPresenter{Metrics: metrics.New()}.PresentResult(res, false, true, true, &buf)
	out := buf.String()
	if !strings.Contains(out, "degree 2") {
		t.Errorf("degree missing: %q", out)
	}
	if !strings.Contains(out, "1 2 1") {
		t.Errorf("coefficients missing: %q", out)
	}
	if !strings.Contains(out, "Memory Stats") {
		t.Errorf("details missing: %q", out)
	}
}

func TestPresentResultWithoutMetrics(t *testing.T) {
	res := orchestration.MultiplicationResult{
		Name:         "Schoolbook",
		Coefficients: []uint64{1},
	}
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentResult(res, false, true, false, &buf)
	if strings.Contains(buf.String(), "Memory Stats") {
		t.Error("details printed without a metrics collector")
	}
}

func TestHandleError(t *testing.T) {
	var buf bytes.Buffer
	code := CLIResultPresenter{}.HandleError(errors.New("boom"), &buf)
	if code != apperrors.ExitErrorGeneric {
		t.Errorf("exit code = %d", code)
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("message missing: %q", buf.String())
	}
}

func TestDisplayProgressDrains(t *testing.T) {
	ch := make(chan progress.Update, 8)
	var wg sync.WaitGroup
	wg.Add(1)
	var buf bytes.Buffer
	go DisplayProgress(&wg, ch, 2, &buf)
	ch <- progress.Update{MultiplierIndex: 0, Value: 0.5}
	ch <- progress.Update{MultiplierIndex: 1, Value: 1}
	close(ch)
	wg.Wait()
}
