// SPDX-License-Identifier: MIT

// Package timing brackets solver core loops with wall-clock and CPU-time stamps.
//
// Usage:
//
//	sw := timing.Start()
//	... core loop ...
//	m := sw.Stop()
//	fmt.Println(m.Seconds())
//
// CPU time is the process user+system time reported by getrusage on unix
// platforms. Where it is unavailable Measurement.CPUAvailable is false and
// Seconds falls back to wall time. Timing never returns an error: a missing
// clock must not block the caller's primary result.
package timing
