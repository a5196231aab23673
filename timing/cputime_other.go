// SPDX-License-Identifier: MIT

//go:build !unix

package timing

import "time"

// processCPUTime is unavailable on this platform; callers fall back to wall time.
func processCPUTime() (time.Duration, bool) {
	return 0, false
}
