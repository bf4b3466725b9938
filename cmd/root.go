package cmd

import (
	"fmt"
	"os"

	"item-matcher/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "item-matcher",
	Short: "Item Matcher Service",
	Long: `Item Matcher pairs every item of a source catalog with an item of a candidate catalog.
It auto-matches obvious pairs, suggests candidates for the rest and keeps the decisions
in a persistent ledger that can be exported as JSON or CSV.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps, this is a CLI tool
		l, logErr := logger.NewConsole()
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
