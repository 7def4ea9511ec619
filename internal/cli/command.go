// Package cli wires the cobra command line interface for phonafind.
// With no arguments the command starts the interactive terminal
// session; with a class and a list of codes it answers a single
// lookup and exits, which keeps the tool usable from scripts.
package cli

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/yourusername/phonafind/internal"
	"github.com/yourusername/phonafind/internal/config"
	"github.com/yourusername/phonafind/internal/logbook"
	"github.com/yourusername/phonafind/internal/phoneme"
	"github.com/yourusername/phonafind/internal/tui"
)

// CreateRootCommand creates and configures the root cobra command.
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "phonafind [codes...]",
		Short: "Common feature finder for English phonemes",
		Long: `phonafind reports the articulatory features a set of English
consonant or vowel phonemes has in common. Phonemes are entered as the
numeric codes from the standard course chart (run with --chart to see
it).

Examples:
  phonafind                          # Interactive session (default)
  phonafind --class consonant 1 2    # /p/ /b/: place, manner, voicing
  phonafind --class vowel 1 2        # /i/ /ɪ/: height, backness, ...
  phonafind --chart                  # Print the phoneme number chart`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	rootCmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is ~/.config/phonafind/config.yaml)")
	rootCmd.Flags().StringVarP(&flags.Class, "class", "c", "", "phoneme class for one-shot lookups: consonant or vowel")
	rootCmd.Flags().BoolVar(&flags.Chart, "chart", false, "print the phoneme number chart and exit")

	return rootCmd
}

// Run executes the selected mode: chart dump, one-shot lookup, or the
// interactive session.
func Run(cmd *cobra.Command, args []string, flags *Flags) error {
	cfg, err := config.Load(flags.CfgFile)
	if err != nil {
		return err
	}

	if flags.Chart {
		fmt.Fprint(cmd.OutOrStdout(), FormatChart())
		return nil
	}

	if len(args) > 0 {
		return runOneShot(cmd, args, flags, cfg)
	}

	if flags.Class != "" {
		return fmt.Errorf("--class needs phoneme codes as arguments")
	}

	if err := cfg.EnsureDefault(); err != nil {
		return err
	}
	p := tea.NewProgram(tui.NewApp(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running session: %w", err)
	}
	return nil
}

func runOneShot(cmd *cobra.Command, args []string, flags *Flags, cfg *config.Config) error {
	if flags.Class == "" {
		return fmt.Errorf("one-shot lookups need --class consonant or --class vowel")
	}
	class, err := phoneme.ParseClass(flags.Class)
	if err != nil {
		return err
	}

	codes := make([]phoneme.Code, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("%q is not a phoneme number", arg)
		}
		codes = append(codes, phoneme.Code(n))
	}
	if limit := cfg.Settings.MaxEntries; limit > 0 && len(codes) > limit {
		return fmt.Errorf("at most %d codes per lookup (max_entries)", limit)
	}

	results, err := phoneme.CommonFeatures(class, codes)
	if err != nil {
		return err
	}

	if cfg.Settings.SessionLog {
		if book, err := logbook.New(cfg.LogPath()); err == nil {
			book.Lookup(class, codes, results)
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), FormatResults(results, cfg.Settings.QuietMisses))
	return nil
}
