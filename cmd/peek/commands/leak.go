package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/peek/internal/app"
)

const (
	defaultPublic = "Hello World"
	defaultSecret = "It's a s3kr3t!"
)

func (c *CLI) newLeakCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leak",
		Short: "Recover the secret stored past the public bytes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			secret, _ := cmd.Flags().GetString("secret")
			public, _ := cmd.Flags().GetString("public")
			offset, _ := cmd.Flags().GetInt("offset")
			length, _ := cmd.Flags().GetInt("length")
			platform, _ := cmd.Flags().GetString("platform")
			maxRounds, _ := cmd.Flags().GetInt("max-rounds")
			margin, _ := cmd.Flags().GetInt("margin")
			reportDir, _ := cmd.Flags().GetString("report")

			_, err := c.app.Leak(cmd.Context(), app.LeakOptions{
				ConfigPath: configPath,
				Public:     public,
				Secret:     secret,
				Offset:     offset,
				Length:     length,
				OutputMode: outputMode(cmd),
				Overrides: app.Overrides{
					Platform:  platform,
					MaxRounds: maxRounds,
					Margin:    margin,
				},
				ReportDir: reportDir,
			})
			return err
		},
	}
	cmd.Flags().StringP("secret", "s", defaultSecret, "Bytes placed past the bounds check")
	cmd.Flags().StringP("public", "p", defaultPublic, "Bytes inside the bounds check")
	cmd.Flags().Int("offset", 0,
		"First offset to read when --length is set (in-bounds offsets, and bytes equal to their training byte, stay unclear)")
	cmd.Flags().Int("length", 0, "Number of offsets to read (0 reads the whole secret)")
	cmd.Flags().Int("max-rounds", 0, "Rounds per byte before giving up (default from config)")
	cmd.Flags().Int("margin", 0, "Confidence margin over twice the runner-up (default from config)")
	cmd.Flags().String("report", "", "Directory to write a JSON report of the run to")
	outputFlags(cmd)
	return cmd
}
