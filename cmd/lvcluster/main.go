// SPDX-License-Identifier: MIT

// Command lvcluster clusters a dataset file with one of the two union-find
// strategies and prints the result.
//
//	lvcluster -mode weighted -k 4 edges.txt
//	lvcluster -mode hamming -max-dist 3 -linkage single codes.txt
//	lvcluster -config run.yaml
//
// Flags override values from the YAML file given by -config.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvcluster/config"
	"github.com/katalvlaran/lvcluster/hamming"
	"github.com/katalvlaran/lvcluster/input"
	"github.com/katalvlaran/lvcluster/kcluster"
	"github.com/katalvlaran/lvcluster/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "lvcluster:", err)
		os.Exit(1)
	}
}

// run parses args, executes one clustering run and writes the report to stdout.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("lvcluster", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath  = fs.String("config", "", "YAML configuration file")
		mode        = fs.String("mode", "", "clustering mode: weighted or hamming")
		clusters    = fs.Int("k", 0, "target number of clusters (weighted)")
		maxDist     = fs.Int("max-dist", 0, "merge threshold (hamming)")
		linkage     = fs.String("linkage", "", "complete or single (hamming)")
		logLevel    = fs.String("log-level", "", "debug, info, warn or error")
		metricsFile = fs.String("metrics-file", "", "write a Prometheus text snapshot here")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	// Only explicitly set flags override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = *mode
		case "k":
			cfg.Clusters = *clusters
		case "max-dist":
			cfg.MaxDistance = *maxDist
		case "linkage":
			cfg.Linkage = *linkage
		case "log-level":
			cfg.Log.Level = *logLevel
		case "metrics-file":
			cfg.MetricsFile = *metricsFile
		}
	})
	if fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	f, err := os.Open(cfg.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	logger.Info("run started", zap.String("mode", cfg.Mode), zap.String("input", cfg.Input))
	switch cfg.Mode {
	case config.ModeWeighted:
		err = runWeighted(f, cfg, logger, m, stdout)
	case config.ModeHamming:
		err = runHamming(f, cfg, logger, m, stdout)
	}
	if err != nil {
		return err
	}

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

func runWeighted(r io.Reader, cfg config.Config, logger *zap.Logger, m *metrics.Collector, stdout io.Writer) error {
	c := kcluster.New(kcluster.WithLogger(logger), kcluster.WithMetrics(m))
	if _, _, err := input.LoadEdges(r, c, input.WithLogger(logger)); err != nil {
		return err
	}
	vertices, edges := c.Size()
	fmt.Fprintf(stdout, "Completed reading %d vertices and %d edges\n", vertices, edges)

	distance, err := c.Cluster(cfg.Clusters)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Distance at %d clusters is %d\n", cfg.Clusters, distance)

	return nil
}

func runHamming(r io.Reader, cfg config.Config, logger *zap.Logger, m *metrics.Collector, stdout io.Writer) error {
	linkage, err := hamming.ParseLinkage(cfg.Linkage)
	if err != nil {
		return err
	}
	cr, err := input.NewCodeReader(r, input.WithLogger(logger))
	if err != nil {
		return err
	}
	c, err := hamming.New(cr.Width(),
		hamming.WithLogger(logger),
		hamming.WithMetrics(m),
		hamming.WithLinkage(linkage),
		hamming.WithCapacity(cr.Count()),
	)
	if err != nil {
		return err
	}
	if _, err := cr.Load(c); err != nil {
		return err
	}
	vertices, codes := c.Size()
	fmt.Fprintf(stdout, "Completed reading %d vertices with %d distinct codes\n", vertices, codes)

	c.Cluster(cfg.MaxDistance)
	fmt.Fprintf(stdout, "%d clusters at max distance %d (%s linkage)\n", c.Groups(), cfg.MaxDistance, linkage)

	return c.WriteSummary(stdout)
}
