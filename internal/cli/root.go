// Package cli implements the pagemind command tree.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pagemind",
	Short: "PageMind - knowledge-grounded Messenger assistant",
	Long: "PageMind connects messaging-platform pages to OpenRouter models,\n" +
		"grounding replies in a local Markdown knowledge base.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
