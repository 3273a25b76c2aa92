package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/junyuh/titlesift/internal/config"
	"github.com/junyuh/titlesift/internal/logging"
	"github.com/junyuh/titlesift/internal/sieve"
	"github.com/junyuh/titlesift/internal/tui"
	"github.com/junyuh/titlesift/internal/variant"
)

var tuiFile string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactively filter a title listing",
	Long: `Opens the listing with a rule input box. Edits are debounced; after the
quiet period the rule is applied and non-matching rows are hidden. If
watching is enabled, changes to the titles file reload the listing under
the current rule.`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVarP(&tuiFile, "file", "f", "", "titles file")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	log, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer log.Close()

	path := tuiFile
	if path == "" {
		path = cfg.Filter.TitlesFile
	}
	if path == "" {
		return fmt.Errorf("no titles source: pass --file or set filter.titles_file")
	}

	candidates, err := sieve.LoadTitles(path)
	if err != nil {
		return err
	}

	conv, err := variant.Default()
	if err != nil {
		return fmt.Errorf("initializing script conversion: %w", err)
	}

	opts := tui.Options{
		Debounce: cfg.Debounce(),
		MaxRows:  cfg.TUI.MaxRows,
		Logger:   log,
	}

	if cfg.Filter.Watch {
		w, err := sieve.Watch(path, log)
		if err != nil {
			log.Warn("file watching disabled", "error", err)
		} else {
			defer w.Close()
			opts.Updates = w.Updates()
		}
	}

	model := tui.New(sieve.New(conv, log), candidates, opts)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
