// SPDX-License-Identifier: MIT

// Package menu runs the interactive algorithm selection loop.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/tspcompare/instance"
	"github.com/katalvlaran/tspcompare/report"
	"github.com/katalvlaran/tspcompare/tsp"
)

const (
	choiceNearestNeighbor  = 1
	choiceNearestInsertion = 2
	choiceBruteForce       = 3
	choiceExit             = 4
)

// Config tunes the loop. A zero BruteForceLimit means tsp.DefaultBruteForceLimit.
type Config struct {
	BruteForceLimit int
	Logger          *slog.Logger
}

type menu struct {
	in   *bufio.Reader
	out  io.Writer
	inst *instance.Instance
	cfg  Config
	log  *slog.Logger
}

// Run prompts on out and reads choices from in until the user exits or in is
// exhausted. Bad input is reported and re-prompted; solver failures are
// reported and the loop continues.
//
// Errors: only I/O failures on in or out.
func Run(in io.Reader, out io.Writer, inst *instance.Instance, cfg Config) error {
	if cfg.BruteForceLimit <= 0 {
		cfg.BruteForceLimit = tsp.DefaultBruteForceLimit
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := &menu{in: bufio.NewReader(in), out: out, inst: inst, cfg: cfg, log: log}

	return m.loop()
}

func (m *menu) loop() error {
	for {
		if err := m.prompt(); err != nil {
			return err
		}
		line, ok, err := m.readLine()
		if err != nil {
			return err
		}
		if !ok {
			return m.exit()
		}

		choice, convErr := strconv.Atoi(line)
		m.log.Debug("menu choice", "input", line)
		switch {
		case convErr != nil:
			err = m.invalid()
		case choice == choiceNearestNeighbor:
			err = m.run(tsp.AlgoNearestNeighbor, false)
		case choice == choiceNearestInsertion:
			err = m.run(tsp.AlgoNearestInsertion, false)
		case choice == choiceBruteForce:
			var proceed, open bool
			proceed, open, err = m.confirmBruteForce()
			if err == nil && !open {
				return m.exit()
			}
			if err == nil && proceed {
				err = m.run(tsp.AlgoBruteForce, m.inst.Len() > m.cfg.BruteForceLimit)
			}
		case choice == choiceExit:
			return m.exit()
		default:
			err = m.invalid()
		}
		if err != nil {
			return err
		}
	}
}

func (m *menu) prompt() error {
	_, err := fmt.Fprint(m.out, "\nChoose an algorithm to run:\n"+
		"1. Nearest Neighbor Algorithm\n"+
		"2. Nearest Insertion Algorithm\n"+
		"3. Brute Force Algorithm\n"+
		"4. Exit\n"+
		"Enter your choice: ")

	return err
}

// readLine returns the next trimmed line of any length; ok is false at end
// of input. A final line without a newline is still returned.
func (m *menu) readLine() (line string, ok bool, err error) {
	line, err = m.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, fmt.Errorf("menu: read input: %w", err)
		}
		if line == "" {
			return "", false, nil
		}
	}

	return strings.TrimSpace(line), true, nil
}

func (m *menu) invalid() error {
	_, err := fmt.Fprintln(m.out, "Invalid choice. Please try again.")

	return err
}

func (m *menu) exit() error {
	_, err := fmt.Fprintln(m.out, "Exiting program.")

	return err
}

// confirmBruteForce asks before an exhaustive search above the limit.
// open is false when input ended while waiting for the answer.
func (m *menu) confirmBruteForce() (proceed, open bool, err error) {
	n := m.inst.Len()
	if n <= m.cfg.BruteForceLimit {
		return true, true, nil
	}
	if _, err = fmt.Fprintf(m.out, "Brute force on %d vertices enumerates %d! tours and may not finish in reasonable time.\n"+
		"Continue? [y/N]: ", n, n-1); err != nil {
		return false, true, err
	}
	answer, ok, err := m.readLine()
	if err != nil || !ok {
		return false, ok, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		m.log.Warn("brute force confirmed above limit", "vertices", n, "limit", m.cfg.BruteForceLimit)
		return true, true, nil
	default:
		_, err = fmt.Fprintln(m.out, "Brute force skipped.")
		return false, true, err
	}
}

func (m *menu) run(algo tsp.Algorithm, acknowledged bool) error {
	opts := tsp.DefaultOptions()
	opts.BruteForceLimit = m.cfg.BruteForceLimit
	opts.AllowIntractable = acknowledged
	opts.Logger = m.log

	res, err := m.inst.Solve(algo, opts)
	if err != nil {
		m.log.Error("solver failed", "algorithm", algo.String(), "vertices", m.inst.Len(), "error", err)
		if errors.Is(err, tsp.ErrTooFewVertices) {
			_, werr := fmt.Fprintf(m.out, "%s needs at least two vertices.\n", algo)
			return werr
		}
		_, werr := fmt.Fprintf(m.out, "Error: %v\n", err)
		return werr
	}
	m.log.Info("solver finished",
		"algorithm", algo.String(),
		"vertices", m.inst.Len(),
		"cost", res.Cost,
		"seconds", res.Timing.Seconds(),
		"clock", res.Timing.Source())

	return report.WriteResult(m.out, res)
}
