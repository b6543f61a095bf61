package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"redfa/internal/batch"
	"redfa/internal/config"
)

// NewBatchCommand creates the batch subcommand.
func NewBatchCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "batch <jobfile>",
		Short: "Run a job file of conversions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			file, err := batch.Parse(string(data))
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			runner := batch.NewRunner(cfg.Renderer(), slog.Default())
			results, err := runner.Run(cmd.Context(), file)
			for _, res := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "job %s: %d states -> %s\n", res.Name, res.States, res.Path)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")

	return cmd
}
