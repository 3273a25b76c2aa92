package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/junyuh/titlesift/internal/config"
	"github.com/junyuh/titlesift/internal/logging"
	"github.com/junyuh/titlesift/internal/sieve"
	"github.com/junyuh/titlesift/internal/variant"
)

var (
	filterFile      string
	filterDecisions bool
)

var filterCmd = &cobra.Command{
	Use:   "filter [rule]",
	Short: "Apply a rule to a title listing once and print the result",
	Long: `Reads titles (one per line) from --file or stdin, applies the rule,
and prints the visible titles in their original order. With no rule, or an
empty rule, every title is visible.

Examples:
  titlesift filter 'HEVC|x265；简体' --file titles.txt
  cat titles.txt | titlesift filter '/S0[12]E\d+/'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().StringVarP(&filterFile, "file", "f", "", "titles file (default: stdin)")
	filterCmd.Flags().BoolVar(&filterDecisions, "decisions", false, "print every handle with its visibility instead of visible titles only")
	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	log, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer log.Close()

	rule := ""
	if len(args) == 1 {
		rule = args[0]
	}

	candidates, err := loadCandidates(cfg)
	if err != nil {
		return err
	}

	conv, err := variant.Default()
	if err != nil {
		return fmt.Errorf("initializing script conversion: %w", err)
	}

	decisions, err := sieve.New(conv, log).FilterAll(rule, candidates)
	if err != nil {
		return err
	}

	byHandle := make(map[string]string, len(candidates))
	for _, c := range candidates {
		byHandle[c.Handle] = c.Title
	}
	for _, d := range decisions {
		if filterDecisions {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%t\t%s\n", d.Handle, d.Visible, byHandle[d.Handle])
			continue
		}
		if d.Visible {
			fmt.Fprintln(cmd.OutOrStdout(), byHandle[d.Handle])
		}
	}
	return nil
}

// loadCandidates resolves the titles source: --file flag, then configured
// titles file, then stdin. A missing source is an error here, at the glue
// layer; the evaluator itself never depends on one.
func loadCandidates(cfg *config.Config) ([]sieve.Candidate, error) {
	path := filterFile
	if path == "" {
		path = cfg.Filter.TitlesFile
	}
	if path != "" {
		return sieve.LoadTitles(path)
	}

	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
		return nil, fmt.Errorf("no titles source: pass --file or pipe titles on stdin")
	}
	return sieve.ReadTitles(os.Stdin)
}
