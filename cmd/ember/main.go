// Package main provides the Ember ML Framework CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ember-ml/ember/internal/train"
)

const version = "v0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ember",
		Short:         "Ember - scalar autodiff and tiny neural networks for Go",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newTrainCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Ember ML Framework %s\n", version)
		},
	}
}

func newTrainCmd() *cobra.Command {
	var configPath string
	flags := train.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a small classifier on a 2D point dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := train.DefaultConfig()
			if configPath != "" {
				loaded, err := train.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			// Explicit flags win over the config file.
			if cmd.Flags().Changed("dataset") {
				cfg.Dataset = flags.Dataset
			}
			if cmd.Flags().Changed("points") {
				cfg.Points = flags.Points
			}
			if cmd.Flags().Changed("hidden") {
				cfg.Hidden = flags.Hidden
			}
			if cmd.Flags().Changed("lr") {
				cfg.LearningRate = flags.LearningRate
			}
			if cmd.Flags().Changed("momentum") {
				cfg.Momentum = flags.Momentum
			}
			if cmd.Flags().Changed("epochs") {
				cfg.Epochs = flags.Epochs
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = flags.Seed
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			trainer, err := train.New(cfg, logger)
			if err != nil {
				return err
			}

			logger.Info("training started",
				slog.String("dataset", cfg.Dataset),
				slog.Int("points", cfg.Points),
				slog.Int("hidden", cfg.Hidden),
				slog.Float64("lr", cfg.LearningRate),
				slog.Int("epochs", cfg.Epochs),
			)
			res := trainer.Run()
			logger.Info("training finished",
				slog.Float64("loss", res.Loss),
				slog.Int("correct", res.Correct),
				slog.Int("total", res.Total),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML training config")
	cmd.Flags().StringVar(&flags.Dataset, "dataset", flags.Dataset, "dataset name (simple, diag, split, xor, circle, spiral)")
	cmd.Flags().IntVar(&flags.Points, "points", flags.Points, "number of dataset points")
	cmd.Flags().IntVar(&flags.Hidden, "hidden", flags.Hidden, "hidden layer width")
	cmd.Flags().Float64Var(&flags.LearningRate, "lr", flags.LearningRate, "SGD learning rate")
	cmd.Flags().Float64Var(&flags.Momentum, "momentum", flags.Momentum, "SGD momentum")
	cmd.Flags().IntVar(&flags.Epochs, "epochs", flags.Epochs, "training epochs")
	cmd.Flags().Int64Var(&flags.Seed, "seed", flags.Seed, "random seed")
	return cmd
}
