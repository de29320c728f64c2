package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/planetpath/config"
	"github.com/katalvlaran/planetpath/pathsearch"
	"github.com/katalvlaran/planetpath/planet"
	"github.com/katalvlaran/planetpath/planetfile"
)

// polesUndefinedMsg is printed instead of a path when the planet has no
// usable poles.
const polesUndefinedMsg = "poles are undefined"

type searchFlags struct {
	configPath    string
	days          int
	maxExpansions int
	noPruning     bool
	stats         bool
}

func newSearchCmd(a *app) *cobra.Command {
	f := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "search <planet-file>",
		Short: "Search the best path from the north pole to the south pole",
		Long: `Search the best path from the north pole to the south pole.

Settings are resolved in order: built-in defaults, the --config profile,
PLANETPATH_* environment variables, then flags given on the command line.

Examples:
  planetpath search planet.txt --days 3
  planetpath search planet.txt --config profile.yaml --stats
  PLANETPATH_MAX_EXPANSIONS=100000 planetpath search big.txt -d 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, a, f, args[0])
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML search profile")
	fl.IntVarP(&f.days, "days", "d", 1, "days available; the visit budget is days*3")
	fl.IntVar(&f.maxExpansions, "max-expansions", 0, "cap on expanded partial paths (0 = unlimited)")
	fl.BoolVar(&f.noPruning, "no-pruning", false, "keep expanding partial paths that already fill the budget")
	fl.BoolVar(&f.stats, "stats", false, "print search statistics after the result")

	return cmd
}

func runSearch(cmd *cobra.Command, a *app, f *searchFlags, file string) error {
	cfg, err := resolveSearchConfig(cmd, f)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	g, err := planetfile.Load(file, a.log)
	if errors.Is(err, planet.ErrPoleNotFound) {
		a.log.Warn("planet has no poles", zap.Error(err))
		fmt.Fprintln(out, polesUndefinedMsg)
		return nil
	}
	if err != nil {
		return err
	}

	res, err := pathsearch.Search(g, cfg.Days, cfg.SearchOptions(a.log)...)
	if errors.Is(err, pathsearch.ErrPolesUndefined) {
		fmt.Fprintln(out, polesUndefinedMsg)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, res.String())
	if f.stats {
		fmt.Fprintf(out, "max visits: %d\ncandidates: %d\nexpanded:   %d\ntruncated:  %t\n",
			res.MaxVisits, res.Candidates, res.Expanded, res.Truncated)
	}

	return nil
}

// resolveSearchConfig layers explicitly set flags over the profile.
func resolveSearchConfig(cmd *cobra.Command, f *searchFlags) (*config.Config, error) {
	cfg, err := loadProfile(f.configPath)
	if err != nil {
		return nil, err
	}

	fl := cmd.Flags()
	if fl.Changed("days") {
		cfg.Days = f.days
	}
	if fl.Changed("max-expansions") {
		cfg.MaxExpansions = f.maxExpansions
	}
	if fl.Changed("no-pruning") {
		cfg.LengthPruning = !f.noPruning
	}

	return cfg, cfg.Validate()
}
