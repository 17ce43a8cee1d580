package main

import (
	"os"

	"github.com/drakos74/classifier/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	datasetPath string
	seed        int64
	train       float64
	validation  float64
	distance    string
	logLevel    string
	reportDir   string
	metricsPort int
	classifiers []string

	rootCmd = &cobra.Command{
		Use:   "classifier",
		Short: "Train and evaluate nearest neighbour and naive bayes classifiers on tabular data",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			return nil
		},
		SilenceUsage: true,
	}

	describeCmd = &cobra.Command{
		Use:   "describe [dataset]",
		Short: "Print the attributes and examples of a dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDescribe,
	}

	splitCmd = &cobra.Command{
		Use:   "split [dataset]",
		Short: "Split a dataset into train, validation and test partitions",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSplit,
	}

	evaluateCmd = &cobra.Command{
		Use:   "evaluate [dataset]",
		Short: "Train the classifiers on the train partition and evaluate them on the held out examples",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEvaluate,
	}
)

func init() {
	defaults := config.Default()

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "yaml config of the run")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", defaults.Seed, "seed of the sampler")
	rootCmd.PersistentFlags().Float64Var(&train, "train", defaults.Split.Train, "fraction of each class sampled into the train partition")
	rootCmd.PersistentFlags().Float64Var(&validation, "validation", defaults.Split.Validation, "fraction of the dataset assigned to the validation partition")

	evaluateCmd.Flags().StringVar(&distance, "distance", defaults.Distance, "distance metric of the nearest neighbour classifier")
	evaluateCmd.Flags().StringSliceVar(&classifiers, "classifiers", defaults.Classifiers, "classifiers to evaluate")
	evaluateCmd.Flags().StringVar(&reportDir, "report-dir", "", "directory to store the json reports in")
	evaluateCmd.Flags().IntVar(&metricsPort, "metrics-port", 0, "port to serve the prometheus metrics on after the evaluation")

	rootCmd.AddCommand(describeCmd, splitCmd, evaluateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("classifier failed")
		os.Exit(1)
	}
}
