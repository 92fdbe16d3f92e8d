package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/peek/internal/app"
)

func (c *CLI) newCalibrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Measure hit and miss latencies and read a string with plain flush+reload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			text, _ := cmd.Flags().GetString("text")
			samples, _ := cmd.Flags().GetInt("samples")
			platform, _ := cmd.Flags().GetString("platform")

			_, err := c.app.Calibrate(cmd.Context(), app.CalibrateOptions{
				ConfigPath: configPath,
				Text:       text,
				Samples:    samples,
				OutputMode: outputMode(cmd),
				Overrides:  app.Overrides{Platform: platform},
			})
			return err
		},
	}
	cmd.Flags().StringP("text", "t", defaultSecret, "String to read back through the cache")
	cmd.Flags().Int("samples", 1024, "Hit and miss measurements for the latency profile")
	outputFlags(cmd)
	return cmd
}
