// SPDX-License-Identifier: MIT

// Package instance ties a generated point set to its distance matrix.
//
// An Instance is immutable after New returns: solvers only read it, and a
// different vertex count produces a fresh Instance through Regenerate rather
// than mutating the old one. The random source is owned by the Instance and
// handed on to every regenerated Instance, so a process seeds once and draws
// successive point sets from the same stream.
//
// Concurrency: an Instance may be read from several goroutines, but
// Regenerate advances the shared *rand.Rand and must not run concurrently
// with another Regenerate on any Instance of the same lineage.
package instance
