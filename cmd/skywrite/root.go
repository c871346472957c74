package main

import (
	"github.com/spf13/cobra"

	"github.com/keertigurusiddanavar76-ops/skywrite/internal/api"
	"github.com/keertigurusiddanavar76-ops/skywrite/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "skywrite",
	Short: "Grammar correction and writing enhancement service",
	Long: `SkyWrite corrects grammar and adjusts the tone of free-form text,
returning the improved version together with a list of specific edits
and their explanations.

Correction is delegated to an LLM when an API key is configured; without
one, a deterministic rule-based corrector handles requests locally.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.skywrite/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "skywrite home directory (default: ~/.skywrite)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
