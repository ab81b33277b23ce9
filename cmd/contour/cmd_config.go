package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/contourkit/contour/internal/config"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration to a YAML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "contour.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			a.logger.Info("Wrote default configuration", zap.String("path", path))
			cmd.Printf("wrote %s\n", path)
			return nil
		},
	})
	return cmd
}
