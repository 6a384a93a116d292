package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tacgrid/flowfield"
	"github.com/katalvlaran/tacgrid/grid"
	"github.com/katalvlaran/tacgrid/pathing"
)

var (
	flagUnit string
	flagTo   string
	flagFly  bool
)

var pathCmd = &cobra.Command{
	Use:   "path <board>",
	Short: "Draw the path from a target back to a unit",
	Long: `Computes the unit's flow field and draws the path from --to back to
--unit: '@' is the unit, '+' a normal step, '!' a forced step.`,
	Args: cobra.ExactArgs(1),
	RunE: runPath,
}

func init() {
	pathCmd.Flags().StringVar(&flagUnit, "unit", "0,0", "Unit position as row,col")
	pathCmd.Flags().StringVar(&flagTo, "to", "0,0", "Target position as row,col")
	pathCmd.Flags().BoolVar(&flagFly, "fly", false, "Use air movement rules")
}

func runPath(cmd *cobra.Command, args []string) error {
	g, rules, err := loadBoard(args[0])
	if err != nil {
		return err
	}
	unit, err := parseCell(g.Dims(), flagUnit)
	if err != nil {
		return err
	}
	target, err := parseCell(g.Dims(), flagTo)
	if err != nil {
		return err
	}

	p := pathing.New(g, rules, pathing.WithSeed(flagSeed), pathing.WithFly(flagFly))
	p.Put(unit, grid.Self)
	p.Execute()

	path, err := p.Path(target)
	if err != nil {
		return fmt.Errorf("no route from %v to %v: %w", unit, target, err)
	}
	route, err := p.Route(target)
	if err != nil {
		return err
	}
	marks := make(map[int]rune, len(path))
	forced := 0
	for _, c := range path {
		switch {
		case c == unit:
			marks[c.Ix()] = '@'
		case p.Tier(c) == flowfield.TierForced:
			marks[c.Ix()] = '!'
			forced++
		default:
			marks[c.Ix()] = '+'
		}
	}
	logger.Info("path", "unit", unit, "to", target, "steps", len(path)-1, "forced", forced, "fly", flagFly)

	out := cmd.OutOrStdout()
	fmt.Fprint(out, g.Render(rules, func(c grid.Cell) (rune, bool) {
		r, ok := marks[c.Ix()]
		return r, ok
	}))
	fmt.Fprintln(out, route)
	return nil
}
