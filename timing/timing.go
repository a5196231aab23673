// SPDX-License-Identifier: MIT

package timing

import "time"

// Measurement is the elapsed time of one bracketed section.
type Measurement struct {
	Started  time.Time     // wall-clock start
	Finished time.Time     // wall-clock end
	Wall     time.Duration // monotonic wall duration
	CPU      time.Duration // process CPU time consumed; valid only if CPUAvailable

	CPUAvailable bool
}

// Seconds returns elapsed CPU seconds, or wall seconds when CPU time is unavailable.
func (m Measurement) Seconds() float64 {
	if m.CPUAvailable {
		return m.CPU.Seconds()
	}

	return m.Wall.Seconds()
}

// Source names the clock Seconds reads from: "cpu" or "wall".
func (m Measurement) Source() string {
	if m.CPUAvailable {
		return "cpu"
	}

	return "wall"
}

// Stopwatch holds the start stamps of an open section. The zero value is not
// usable; obtain one from Start.
type Stopwatch struct {
	started  time.Time
	cpu      time.Duration
	cpuValid bool
}

// Start opens a section.
func Start() Stopwatch {
	cpu, ok := processCPUTime()

	return Stopwatch{started: time.Now(), cpu: cpu, cpuValid: ok}
}

// Stop closes the section and returns the measurement. Stop may be called
// more than once; every call measures from the same start.
func (s Stopwatch) Stop() Measurement {
	var (
		now     = time.Now()
		cpu, ok = processCPUTime()
		m       = Measurement{Started: s.started, Finished: now, Wall: now.Sub(s.started)}
	)
	if ok && s.cpuValid && cpu >= s.cpu {
		m.CPU = cpu - s.cpu
		m.CPUAvailable = true
	}

	return m
}

// Measure runs fn inside a section and returns its measurement with fn's error.
func Measure(fn func() error) (Measurement, error) {
	sw := Start()
	err := fn()

	return sw.Stop(), err
}
