package cmd

import (
	"github.com/itsmostafa/mdbook-summary-generate/internal/preprocessor"
	"github.com/spf13/cobra"
)

var supportsCmd = &cobra.Command{
	Use:   "supports <renderer>",
	Short: "Check whether a renderer is supported by this preprocessor",
	Long:  `Exit with status 0 if the renderer is supported and 1 otherwise.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !preprocessor.New(logger).SupportsRenderer(args[0]) {
			return &exitError{code: 1}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(supportsCmd)
}
