package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"item-matcher/core/config"
	"item-matcher/core/logger"
	"item-matcher/core/reconcile"
	"item-matcher/core/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for match commands
	statusFilter string
	suggestLimit int
	exportFormat string
	exportLayout string
	exportOutput string
	yesConfirm   bool
)

// matchCmd is the parent command for all ledger operations.
var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Review and edit the match ledger",
	Long: `Every match subcommand opens the session the same way the server does: it loads both
catalogs, reads the ledger from the configured slot and auto-matches new items.
Changes are written back to the slot immediately.`,
}

var matchAutoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Auto-match pending items and report statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		_, l, s, err := loadSession(ctx)
		if err != nil {
			return err
		}
		result, err := s.engine.AutoMatch(ctx)
		if err != nil {
			return err
		}
		l.Info("Auto-match pass",
			zap.Int("confirmed", result.Confirmed),
			zap.Int("rejected", result.Rejected),
			zap.Int("unresolved", result.Unresolved),
		)
		logStats(l, s.engine.Stats())
		return nil
	},
}

var matchListCmd = &cobra.Command{
	Use:   "list",
	Short: "List source items with their status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := reconcile.ParseStatusFilter(statusFilter)
		if err != nil {
			return err
		}
		_, _, s, err := loadSession(context.Background())
		if err != nil {
			return err
		}
		return printViews(cmd.OutOrStdout(), s.engine.Filter(filter))
	},
}

var matchStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show match statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, l, s, err := loadSession(context.Background())
		if err != nil {
			return err
		}
		logStats(l, s.engine.Stats())
		return nil
	},
}

var matchSuggestCmd = &cobra.Command{
	Use:   "suggest <sourceId>",
	Short: "Show the candidate shortlist of a source item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := utils.NormalizeID(args[0])
		if err != nil {
			return err
		}
		_, _, s, err := loadSession(context.Background())
		if err != nil {
			return err
		}
		suggestions, err := s.engine.Suggest(id, suggestLimit)
		if err != nil {
			return err
		}
		return printSuggestions(cmd.OutOrStdout(), suggestions)
	},
}

var matchConfirmCmd = &cobra.Command{
	Use:   "confirm <sourceId> <candidateId>",
	Short: "Match a source item to a candidate",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sourceID, err := utils.NormalizeID(args[0])
		if err != nil {
			return err
		}
		candidateID, err := utils.NormalizeID(args[1])
		if err != nil {
			return err
		}
		return mutate(func(ctx context.Context, e *reconcile.Engine) (reconcile.Stats, error) {
			return e.Confirm(ctx, sourceID, candidateID)
		})
	},
}

var matchRejectCmd = &cobra.Command{
	Use:   "reject <sourceId>",
	Short: "Record that no candidate matches a source item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sourceID, err := utils.NormalizeID(args[0])
		if err != nil {
			return err
		}
		return mutate(func(ctx context.Context, e *reconcile.Engine) (reconcile.Stats, error) {
			return e.Reject(ctx, sourceID)
		})
	},
}

var matchResetCmd = &cobra.Command{
	Use:   "reset <sourceId>",
	Short: "Return a source item to pending",
	Long: `Remove the decision of a source item so it becomes pending.

Every match command opens the session and runs auto-match over pending items first,
so the next invocation decides the item again. Use "reject" or "confirm" to record a
lasting decision, or "start" to review it in a long running session.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sourceID, err := utils.NormalizeID(args[0])
		if err != nil {
			return err
		}
		return mutate(func(ctx context.Context, e *reconcile.Engine) (reconcile.Stats, error) {
			return e.Reset(ctx, sourceID)
		})
	},
}

var matchExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger as JSON or CSV",
	Long: `Export the ledger.

Examples:
  # JSON exchange format to stdout
  match export

  # Reduced CSV to a file
  match export --format csv --layout reduced --output matches.csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, s, err := loadSession(context.Background())
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			w = f
		}

		switch exportFormat {
		case "json":
			return s.engine.ExportJSON(w)
		case "csv":
			layout := exportLayout
			if layout == "" {
				layout = cfg.Matcher.CSVLayout
			}
			parsed, err := reconcile.ParseCSVLayout(layout)
			if err != nil {
				return err
			}
			return s.engine.ExportCSV(w, parsed)
		default:
			return fmt.Errorf("unknown export format %q", exportFormat)
		}
	},
}

var matchImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the ledger with an exported JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open import file: %w", err)
		}
		defer f.Close()

		return mutate(func(ctx context.Context, e *reconcile.Engine) (reconcile.Stats, error) {
			return e.Import(ctx, f)
		})
	},
}

var matchClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all progress from the ledger",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		_, l, s, err := loadSession(ctx)
		if err != nil {
			return err
		}

		if !confirmDestructiveAction(cmd.InOrStdin(), cmd.OutOrStdout()) {
			l.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}

		stats, err := s.engine.Clear(ctx)
		if err != nil {
			return err
		}
		logStats(l, stats)
		return nil
	},
}

func init() {
	matchListCmd.Flags().StringVar(&statusFilter, "status", "all", "Filter by status (all, pending, matched, no-match)")
	matchSuggestCmd.Flags().IntVar(&suggestLimit, "limit", 0, "Maximum number of suggestions (0 uses matcher.suggest_limit)")
	matchExportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format (json, csv)")
	matchExportCmd.Flags().StringVar(&exportLayout, "layout", "", "CSV layout (full, reduced), defaults to matcher.csv_layout")
	matchExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	matchClearCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")

	matchCmd.AddCommand(
		matchAutoCmd,
		matchListCmd,
		matchStatsCmd,
		matchSuggestCmd,
		matchConfirmCmd,
		matchRejectCmd,
		matchResetCmd,
		matchExportCmd,
		matchImportCmd,
		matchClearCmd,
	)
	RootCmd.AddCommand(matchCmd)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

// mutate opens a session, applies one change and logs the resulting statistics.
func mutate(fn func(ctx context.Context, e *reconcile.Engine) (reconcile.Stats, error)) error {
	ctx := context.Background()
	_, l, s, err := loadSession(ctx)
	if err != nil {
		return err
	}
	stats, err := fn(ctx, s.engine)
	if err != nil {
		return err
	}
	logStats(l, stats)
	return nil
}

func logStats(l *zap.Logger, s reconcile.Stats) {
	l.Info("Match statistics",
		zap.Int("total", s.Total),
		zap.Int("matched", s.Matched),
		zap.Int("rejected", s.Rejected),
		zap.Int("pending", s.Pending),
	)
}

func printViews(w io.Writer, views []reconcile.View) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDESCRIPTION\tSTATUS\tCANDIDATE\tCANDIDATE DESCRIPTION")
	for _, v := range views {
		candidateID, candidateDesc := "", ""
		if v.CandidateID != nil {
			candidateID = v.CandidateID.String()
		}
		switch {
		case v.Candidate != nil:
			candidateDesc = v.Candidate.Description
		case v.Stale:
			candidateDesc = "(not in candidate catalog)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", v.Item.ID, v.Item.Description, v.Status, candidateID, candidateDesc)
	}
	return tw.Flush()
}

func printSuggestions(w io.Writer, suggestions []reconcile.Suggestion) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCORE\tID\tDESCRIPTION")
	for _, s := range suggestions {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Score, s.Item.ID, s.Item.Description)
	}
	return tw.Flush()
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction(in io.Reader, out io.Writer) bool {
	if yesConfirm {
		fmt.Fprintln(out, "\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Fprint(out, "\n⚠️  Type 'yes' to clear all match progress: ")
	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
