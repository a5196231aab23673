// SPDX-License-Identifier: MIT

// Command tspcompare generates a random Euclidean TSP instance and lets the
// user compare nearest neighbor, nearest insertion and brute force on it.
//
// Usage:
//
//	tspcompare [-vertices 20] [-seed 0] [-bf-limit 11] [-log-level info] [-log-format text] [-env-file .env]
//
// Every flag can also be set through a TSPCOMPARE_* environment variable or
// the dotenv file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/tspcompare/instance"
	"github.com/katalvlaran/tspcompare/internal/config"
	"github.com/katalvlaran/tspcompare/internal/logger"
	"github.com/katalvlaran/tspcompare/internal/menu"
	"github.com/katalvlaran/tspcompare/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	logCfg := logger.DefaultConfig()
	logCfg.Level = level
	logCfg.Format = cfg.LogFormat
	logCfg.Output = stderr
	logger.Init(logCfg)
	log := logger.ForComponent("main")

	var opts []instance.Option
	if cfg.Seed != 0 {
		opts = append(opts, instance.WithSeed(cfg.Seed))
	}
	inst, err := instance.New(cfg.Vertices, opts...)
	if err != nil {
		log.Error("generate instance", "vertices", cfg.Vertices, "error", err)
		return 1
	}
	log.Debug("instance ready", "vertices", inst.Len(), "seed", cfg.Seed)

	if err = report.WriteGraph(stdout, inst.Points, inst.Dist); err != nil {
		log.Error("write graph", "error", err)
		return 1
	}

	err = menu.Run(stdin, stdout, inst, menu.Config{
		BruteForceLimit: cfg.BruteForceLimit,
		Logger:          logger.ForComponent("menu"),
	})
	if err != nil {
		log.Error("menu", "error", err)
		return 1
	}

	return 0
}
