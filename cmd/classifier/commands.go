package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/drakos74/classifier/internal/config"
	"github.com/drakos74/classifier/internal/data"
	mlmath "github.com/drakos74/classifier/internal/math"
	"github.com/drakos74/classifier/internal/math/ml"
	"github.com/drakos74/classifier/internal/metrics"
	"github.com/drakos74/classifier/internal/storage"
	"github.com/drakos74/classifier/internal/storage/file/json"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// resolve merges the config file, the explicitly set flags and the dataset argument.
func resolve(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		c, err := config.Load(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = c
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("train") {
		cfg.Split.Train = train
	}
	if flags.Changed("validation") {
		cfg.Split.Validation = validation
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Lookup("distance") != nil && flags.Changed("distance") {
		cfg.Distance = distance
	}
	if flags.Lookup("classifiers") != nil && flags.Changed("classifiers") {
		cfg.Classifiers = classifiers
	}
	if flags.Lookup("report-dir") != nil && flags.Changed("report-dir") {
		cfg.ReportDir = reportDir
	}
	if flags.Lookup("metrics-port") != nil && flags.Changed("metrics-port") {
		cfg.MetricsPort = metricsPort
	}
	if len(args) > 0 {
		cfg.Dataset = args[0]
	}
	if cfg.Dataset == "" {
		return cfg, fmt.Errorf("no dataset given: %w", data.FormatErr)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, fmt.Errorf("could not parse log level '%s': %w", cfg.LogLevel, err)
	}
	zerolog.SetGlobalLevel(level)

	return cfg, cfg.Validate()
}

func runDescribe(cmd *cobra.Command, args []string) error {
	cfg, err := resolve(cmd, args)
	if err != nil {
		return err
	}
	source, err := data.LoadFile(cfg.Dataset)
	if err != nil {
		return err
	}
	return source.Render(cmd.OutOrStdout())
}

type partitions struct {
	train      *data.Dataset
	validation *data.Dataset
	test       *data.Dataset
}

func split(cfg config.Config, source *data.Source) (partitions, error) {
	sampler := data.NewSeededSampler(cfg.Seed)
	var p partitions
	var err error
	if cfg.Split.Validation > 0 {
		p.train, p.validation, p.test, err = sampler.TrainValidationTest(source.Examples, cfg.Split.Train, cfg.Split.Validation)
	} else {
		p.train, p.test, err = sampler.TrainTest(source.Examples, cfg.Split.Train)
		p.validation = data.NewDataset()
	}
	if err != nil {
		return p, fmt.Errorf("could not split '%s': %w", source.Name, err)
	}
	metrics.Observer.Split(source.Name, "train", p.train.Size())
	metrics.Observer.Split(source.Name, "validation", p.validation.Size())
	metrics.Observer.Split(source.Name, "test", p.test.Size())
	log.Info().
		Str("dataset", source.Name).
		Int("train", p.train.Size()).
		Int("validation", p.validation.Size()).
		Int("test", p.test.Size()).
		Msg("split dataset")
	return p, nil
}

func runSplit(cmd *cobra.Command, args []string) error {
	cfg, err := resolve(cmd, args)
	if err != nil {
		return err
	}
	source, err := data.LoadFile(cfg.Dataset)
	if err != nil {
		return err
	}
	p, err := split(cfg, source)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, part := range []struct {
		name string
		set  *data.Dataset
	}{
		{"train", p.train},
		{"validation", p.validation},
		{"test", p.test},
	} {
		if part.set.Size() == 0 {
			continue
		}
		fmt.Fprintf(out, "%s (%d)\n", part.name, part.set.Size())
		if err := data.Render(out, source.Attributes, part.set); err != nil {
			return err
		}
	}
	return nil
}

func newClassifier(name string, cfg config.Config) (ml.Classifier, error) {
	switch name {
	case "knn":
		d, err := mlmath.DistanceOf(cfg.Distance)
		if err != nil {
			return nil, err
		}
		return ml.NewKNN(ml.WithDistance(d)), nil
	case "bayes":
		return ml.NewNaiveBayes(), nil
	}
	return nil, fmt.Errorf("unknown classifier '%s': %w", name, data.UnknownEntityErr)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg, err := resolve(cmd, args)
	if err != nil {
		return err
	}
	source, err := data.LoadFile(cfg.Dataset)
	if err != nil {
		return err
	}
	p, err := split(cfg, source)
	if err != nil {
		return err
	}

	// reports are kept in memory unless a directory is given
	shard := json.LocalShard()
	if cfg.ReportDir != "" {
		shard = json.BlobShard(cfg.ReportDir, storage.ReportsDir)
	}
	store, err := shard(source.Name)
	if err != nil {
		return fmt.Errorf("could not create report storage: %w", err)
	}
	keys := make([]storage.Key, 0)

	evaluator := ml.NewEvaluator(source.Name, metrics.Observer)
	out := cmd.OutOrStdout()
	for _, name := range cfg.Classifiers {
		clf, err := newClassifier(name, cfg)
		if err != nil {
			return err
		}
		if err := clf.Train(source.Attributes, p.train); err != nil {
			return err
		}
		for _, part := range []struct {
			name string
			set  *data.Dataset
		}{
			{"validation", p.validation},
			{"test", p.test},
		} {
			if part.set.Size() == 0 {
				continue
			}
			report, err := evaluator.Evaluate(clf, source.Attributes, part.set)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s on %s: accuracy %.4f\n%s\n", clf.Name(), part.name, report.Accuracy, report.Summary())
			key := storage.Key{
				Dataset: source.Name,
				Run:     report.ID,
				Label:   fmt.Sprintf("%s_%s", clf.Name(), part.name),
			}
			if err := store.Store(key, report); err != nil {
				return fmt.Errorf("could not store report: %w", err)
			}
			keys = append(keys, key)
		}
	}

	if err := renderReports(out, store, keys); err != nil {
		return err
	}

	if cfg.MetricsPort > 0 {
		return serve(cmd.Context(), cfg.MetricsPort)
	}
	return nil
}

// renderReports loads the stored reports back and prints one row per report.
func renderReports(w io.Writer, store storage.Persistence, keys []storage.Key) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"classifier", "partition", "samples", "accuracy", "id"})
	for _, k := range keys {
		var report ml.Report
		if err := store.Load(k, &report); err != nil {
			return fmt.Errorf("could not load report '%s': %w", k.Path(), err)
		}
		table.Append([]string{
			report.Classifier,
			strings.TrimPrefix(k.Label, report.Classifier+"_"),
			strconv.Itoa(report.Samples),
			strconv.FormatFloat(report.Accuracy, 'f', 4, 64),
			report.ID,
		})
	}
	table.Render()
	return nil
}

// serve exposes the metrics until the process is interrupted.
func serve(ctx context.Context, port int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		errs <- metrics.Serve(port)
	}()

	select {
	case <-ctx.Done():
		log.Info().Int("port", port).Msg("stopped serving metrics")
		return nil
	case err := <-errs:
		return fmt.Errorf("could not serve metrics: %w", err)
	}
}
