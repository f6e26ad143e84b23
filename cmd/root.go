package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig  string
	flagRefresh bool
	flagWidth   int
)

var rootCmd = &cobra.Command{
	Use:   "hfblog",
	Short: "Terminal reader for the Hugging Face blog",
	Long: `hfblog scrapes the Hugging Face blog listing, renders articles as plain
text in a scrollable terminal viewer, and keeps a stash of already-read
posts so the menu only shows what is left to read.`,
	RunE: runTUI,
}

func init() {
	rootCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "re-scrape the listing before launching")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "override article wrap width")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(listCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hfblog %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
