package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tacgrid/grid"
	"github.com/katalvlaran/tacgrid/gridgraph"
)

var (
	flagWater  bool
	flagBridge string
)

var regionsCmd = &cobra.Command{
	Use:   "regions <board>",
	Short: "Label connected land or water regions",
	Long: `Labels the 4-connected regions of walkable land (or water with --water)
and draws them as letters. With --bridge i,j the cheapest chain of tiles
joining region i to region j is drawn as '#'.`,
	Args: cobra.ExactArgs(1),
	RunE: runRegions,
}

func init() {
	regionsCmd.Flags().BoolVar(&flagWater, "water", false, "Label water instead of walkable land")
	regionsCmd.Flags().StringVar(&flagBridge, "bridge", "", "Join two regions, given as i,j")
}

func runRegions(cmd *cobra.Command, args []string) error {
	g, rules, err := loadBoard(args[0])
	if err != nil {
		return err
	}
	keep := gridgraph.Keep(rules.Walkable)
	if flagWater {
		keep = rules.Water
	}
	regions, err := gridgraph.New(g, keep)
	if err != nil {
		return err
	}

	bridge := make(map[int]bool)
	if flagBridge != "" {
		src, dst, err := parsePair(flagBridge)
		if err != nil {
			return err
		}
		path, cost, err := regions.Bridge(src, dst)
		if err != nil {
			return fmt.Errorf("bridge %d-%d: %w", src, dst, err)
		}
		for _, c := range path {
			if !regions.Kept(c) {
				bridge[c.Ix()] = true
			}
		}
		logger.Info("bridge", "from", src, "to", dst, "cost", cost)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, g.Render(rules, func(c grid.Cell) (rune, bool) {
		if bridge[c.Ix()] {
			return '#', true
		}
		id := regions.Label(c)
		return regionRune(id), id >= 0
	}))
	for i, comp := range regions.Components() {
		fmt.Fprintf(out, "%c %d cells from %v\n", regionRune(i), len(comp), comp[0])
	}

	if flagWater {
		lakes, err := gridgraph.Lakes(g, rules)
		if err != nil {
			return err
		}
		logger.Info("water regions", "board", g.Name, "regions", regions.Len(), "lakes", len(lakes))
		return nil
	}
	logger.Info("land regions", "board", g.Name, "regions", regions.Len())
	return nil
}

// regionRune cycles through a-z then A-Z.
func regionRune(id int) rune {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	if id < 0 {
		return ' '
	}
	return rune(letters[id%len(letters)])
}

func parsePair(s string) (int, int, error) {
	a, b, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("pair %q: want i,j", s)
	}
	i, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, 0, fmt.Errorf("pair %q: %w", s, err)
	}
	j, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return 0, 0, fmt.Errorf("pair %q: %w", s, err)
	}
	return i, j, nil
}
