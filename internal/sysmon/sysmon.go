// Package sysmon feeds the dashboard's resource gauges with smoothed
// system-wide CPU and memory readings.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// smoothing is the weight of the newest sample in the exponential
// moving average. The dashboard redraws once per second; a 2/3 weight
// keeps the gauges responsive while absorbing single-tick spikes from
// the parallel pointwise stage.
const smoothing = 2.0 / 3.0

// Reading holds one smoothed snapshot of system-wide resource usage.
type Reading struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Monitor produces the readings behind the dashboard gauges. Raw
// samples are clamped to [0, 100] and exponentially smoothed, and the
// peak smoothed values over the monitor's lifetime are kept for the
// run summary.
type Monitor struct {
	raw    func() Reading
	last   Reading
	peak   Reading
	primed bool
}

// NewMonitor creates a monitor and primes the CPU delta, so the first
// reading reflects usage since construction rather than since boot.
func NewMonitor() *Monitor {
	m := &Monitor{raw: rawSample}
	m.raw()
	return m
}

// Read takes one smoothed reading and updates the peaks.
func (m *Monitor) Read() Reading {
	s := m.raw()
	s.CPUPercent = clamp(s.CPUPercent)
	s.MemPercent = clamp(s.MemPercent)
	if !m.primed {
		m.last = s
		m.primed = true
	} else {
		m.last.CPUPercent += smoothing * (s.CPUPercent - m.last.CPUPercent)
		m.last.MemPercent += smoothing * (s.MemPercent - m.last.MemPercent)
	}
	if m.last.CPUPercent > m.peak.CPUPercent {
		m.peak.CPUPercent = m.last.CPUPercent
	}
	if m.last.MemPercent > m.peak.MemPercent {
		m.peak.MemPercent = m.last.MemPercent
	}
	return m.last
}

// Peak returns the highest smoothed reading seen so far.
func (m *Monitor) Peak() Reading {
	return m.peak
}

// rawSample collects a single system-wide snapshot. CPU uses interval=0
// (delta since last call). Returns zero values on error.
func rawSample() Reading {
	var r Reading
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		r.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		r.MemPercent = vmem.UsedPercent
	}
	return r
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
