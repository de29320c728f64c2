package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/planetpath/pathsearch"
	"github.com/katalvlaran/planetpath/planet"
	"github.com/katalvlaran/planetpath/planetfile"
)

func newInspectCmd(a *app) *cobra.Command {
	var from, to, configPath, biome string

	cmd := &cobra.Command{
		Use:   "inspect <planet-file>",
		Short: "List the nodes of a rectangular region with their intrinsic scores",
		Long: `List the nodes whose coordinates fall in the closed rectangle spanned by
--from and --to, with biome, quality and intrinsic score under the active
biome table. Poles are marked N and S. --biome keeps only nodes of the named
biome.

Examples:
  planetpath inspect planet.txt --from 0,0 --to 3,2
  planetpath inspect planet.txt --from 0,0 --to 9,9 --biome jungle`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, err := planet.ParseCoord(from)
			if err != nil {
				return errors.Wrap(err, "--from")
			}
			hi, err := planet.ParseCoord(to)
			if err != nil {
				return errors.Wrap(err, "--to")
			}
			cfg, err := loadProfile(configPath)
			if err != nil {
				return err
			}
			g, err := planetfile.Load(args[0], a.log)
			if err != nil {
				return err
			}

			nodes := g.Within(lo, hi)
			if biome != "" {
				idx, ok := cfg.Biomes.Index(biome)
				if !ok {
					return errors.Errorf("unknown biome %q (known: %s)", biome, strings.Join(cfg.Biomes.Names(), ", "))
				}
				nodes = filterBiome(nodes, idx)
			}

			return writeRegion(cmd, g, nodes, cfg.Biomes.Names(), cfg.Biomes.Weights())
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&from, "from", "", "first corner, x,y")
	fl.StringVar(&to, "to", "", "opposite corner, x,y")
	fl.StringVarP(&configPath, "config", "c", "", "YAML profile supplying the biome table")
	fl.StringVarP(&biome, "biome", "b", "", "only list nodes of this biome")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// filterBiome keeps the nodes whose biome index is idx, in order.
func filterBiome(nodes []planet.Node, idx int) []planet.Node {
	out := nodes[:0]
	for _, n := range nodes {
		if n.Biome == idx {
			out = append(out, n)
		}
	}
	return out
}

func writeRegion(cmd *cobra.Command, g *planet.Graph, nodes []planet.Node, names []string, w pathsearch.BiomeWeights) error {
	north, south, _ := g.Poles()

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "COORD\tPOLE\tBIOME\tQUALITY\tSCORE")
	fmt.Fprintln(tw, "-----\t----\t-----\t-------\t-----")

	for _, n := range nodes {
		pole := "-"
		switch n.ID {
		case north:
			pole = "N"
		case south:
			pole = "S"
		}
		biome, score := fmt.Sprintf("%d", n.Biome), "?"
		if s, err := w.Intrinsic(n); err == nil {
			biome = fmt.Sprintf("%d %s", n.Biome, names[n.Biome])
			score = pathsearch.FormatScore(s)
		}
		fmt.Fprintf(tw, "(%s)\t%s\t%s\t%s\t%s\n",
			n.Coord, pole, biome, pathsearch.FormatScore(n.Quality), score)
	}
	fmt.Fprintf(tw, "%d nodes\n", len(nodes))

	return tw.Flush()
}
