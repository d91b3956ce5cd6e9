package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveMultiplication(t *testing.T) {
	m := New()
	m.ObserveMultiplication("fft", 5*time.Millisecond, nil)
	m.ObserveMultiplication("fft", 7*time.Millisecond, nil)
	m.ObserveMultiplication("schoolbook", time.Millisecond, errors.New("boom"))

	if got := testutil.ToFloat64(m.multiplicationsTotal.WithLabelValues("fft", "success")); got != 2 {
		t.Errorf("fft success count = %f, want 2", got)
	}
	if got := testutil.ToFloat64(m.multiplicationsTotal.WithLabelValues("schoolbook", "error")); got != 1 {
		t.Errorf("schoolbook error count = %f, want 1", got)
	}
}

func TestSetOutputLength(t *testing.T) {
	m := New()
	m.SetOutputLength(999999)
	if got := testutil.ToFloat64(m.outputLength); got != 999999 {
		t.Errorf("output length = %f, want 999999", got)
	}
}

func TestRegistryGathers(t *testing.T) {
	m := New()
	m.ObserveMultiplication("fft", time.Millisecond, nil)
	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if len(families) == 0 {
		t.Error("no metric families gathered")
	}
}

func TestReadMemory(t *testing.T) {
	m := New()
	snap := m.ReadMemory()
	if snap.Sys == 0 {
		t.Error("Sys should be non-zero in a running process")
	}
	if snap.HeapSys == 0 {
		t.Error("HeapSys should be non-zero in a running process")
	}
	// The snapshot is mirrored into the heap gauge.
	if got := testutil.ToFloat64(m.heapInUse); got != float64(snap.HeapAlloc) {
		t.Errorf("heap gauge = %f, want %d", got, snap.HeapAlloc)
	}
}
