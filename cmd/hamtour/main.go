// SPDX-License-Identifier: MIT

// Command hamtour searches a weighted graph for a Hamiltonian cycle and
// prints the tour.
//
// Configuration comes from HAMTOUR_* environment variables (see
// internal/config); -env names an optional dotenv file. Without
// HAMTOUR_GRAPH_FILE the built-in eight-vertex reference graph is used.
//
// Exit status: 0 when a tour is found, 2 when none exists, 1 on error.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/hamtour/builder"
	"github.com/katalvlaran/hamtour/core"
	"github.com/katalvlaran/hamtour/internal/config"
	"github.com/katalvlaran/hamtour/internal/graphfile"
	"github.com/katalvlaran/hamtour/internal/logging"
	"github.com/katalvlaran/hamtour/internal/metrics"
	"github.com/katalvlaran/hamtour/render"
	"github.com/katalvlaran/hamtour/solve"
)

const (
	exitOK       = 0
	exitError    = 1
	exitNotFound = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hamtour", flag.ContinueOnError)
	fs.SetOutput(stderr)
	envFile := fs.String("env", "", "dotenv file to load before reading HAMTOUR_* variables")
	emitGraph := fs.String("emit-graph", "", `write the input graph as HCL to this file ("-" for stdout) and exit`)
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintln(stderr, "hamtour:", err)
		return exitError
	}

	logCfg := logging.DefaultConfig()
	if cfg.LogFormat != "" {
		logCfg.Format = cfg.LogFormat
	}
	if cfg.LogLevel != "" {
		logCfg.Level = cfg.LogLevel
	}
	logCfg.Output = zapcore.AddSync(stderr)
	logger, err := logging.NewLogger(logCfg)
	if err != nil {
		fmt.Fprintln(stderr, "hamtour:", err)
		return exitError
	}
	defer func() { _ = logger.Sync() }()

	g, err := loadGraph(cfg)
	if err != nil {
		logger.Error("failed to load graph", zap.String("file", cfg.GraphFile), zap.Error(err))
		return exitError
	}
	logger.Debug("graph loaded", zap.Int("vertices", g.VertexCount()), zap.Int("edges", g.EdgeCount()))

	if *emitGraph != "" {
		if err = emit(*emitGraph, stdout, g); err != nil {
			logger.Error("failed to write graph", zap.String("target", *emitGraph), zap.Error(err))
			return exitError
		}
		return exitOK
	}

	reg := prometheus.NewRegistry()
	rep, err := solve.Solve(g,
		solve.WithStrategy(cfg.StrategyValue()),
		solve.WithSeed(cfg.Seed),
		solve.WithMaxSteps(cfg.MaxSteps),
		solve.WithLogger(logger),
		solve.WithRecorder(metrics.New(reg)),
	)
	if err != nil {
		logger.Error("search failed", zap.Error(err))
		return exitError
	}

	logger.Info("search finished",
		zap.Stringer("strategy", rep.Strategy),
		zap.Stringer("outcome", rep.Result.Outcome),
		zap.Bool("fell_back", rep.FellBack),
		zap.Int("extensions", rep.Result.Stats.Extensions),
		zap.Int("backtracks", rep.Result.Stats.Backtracks),
	)
	if rep.Closed {
		fmt.Fprintln(stdout, rep.Result.Path)
		fmt.Fprintf(stdout, "cost: %g\n", rep.Result.Cost)
	} else {
		fmt.Fprintln(stdout, "no tour found")
	}

	if err = renderTour(cfg, stdout, g, rep); err != nil {
		logger.Error("render failed", zap.Error(err))
		return exitError
	}
	if cfg.MetricsDump {
		if err = metrics.Dump(stderr, reg); err != nil {
			logger.Error("metrics dump failed", zap.Error(err))
			return exitError
		}
	}

	if !rep.Closed {
		return exitNotFound
	}

	return exitOK
}

func loadGraph(cfg config.Config) (*core.Graph, error) {
	if cfg.GraphFile != "" {
		return graphfile.Load(cfg.GraphFile)
	}

	return builder.BuildGraph(nil, nil, builder.Reference())
}

func emit(target string, stdout io.Writer, g *core.Graph) error {
	if target == "-" {
		return graphfile.Encode(stdout, g)
	}

	return graphfile.Save(target, g)
}

func renderTour(cfg config.Config, stdout io.Writer, g *core.Graph, rep solve.Report) (err error) {
	if strings.EqualFold(cfg.Render, "none") {
		return nil
	}
	r, err := render.New(cfg.Render)
	if err != nil {
		return err
	}

	w := stdout
	if cfg.RenderOutput != "-" {
		f, ferr := os.Create(cfg.RenderOutput)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		w = f
	}

	return r.Render(w, g, rep.Result.Path)
}
