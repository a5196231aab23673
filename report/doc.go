// SPDX-License-Identifier: MIT

// Package report renders instances and solver results as console text.
//
// Numbers go through a golang.org/x/text/message Printer, so grouping and
// decimal separators follow the printer's language (English by default).
// All writers return the first write error they hit and stop writing after it.
package report
