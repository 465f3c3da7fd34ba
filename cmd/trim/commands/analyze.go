package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/trim/internal/app"
)

func (c *CLI) newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [root]",
		Short: "Analyze unit descriptors below root for unused dependencies",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			buildMissing, _ := cmd.Flags().GetBool("build")
			jobs, _ := cmd.Flags().GetInt("jobs")
			extension, _ := cmd.Flags().GetString("extension")
			return c.app.Run(cmd.Context(), root, app.RunOptions{
				Build:     buildMissing,
				Jobs:      jobs,
				Extension: extension,
			})
		},
	}
	cmd.Flags().BoolP("build", "b", false, "Restore and compile units whose artifact is missing")
	cmd.Flags().IntP("jobs", "j", 1, "Number of units to resolve concurrently")
	cmd.Flags().StringP("extension", "e", app.DefaultExtension, "Unit descriptor file suffix")
	return cmd
}
