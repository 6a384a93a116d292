package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tacgrid/grid"
)

var (
	flagCenter string
	flagMin    int
	flagMax    int
)

var areaCmd = &cobra.Command{
	Use:   "area <board>",
	Short: "Mark the cells of a ring around a center",
	Long: `Renders the board with every cell whose squared distance from --center
lies in [--min, --max] drawn as '*'.`,
	Args: cobra.ExactArgs(1),
	RunE: runArea,
}

func init() {
	areaCmd.Flags().StringVar(&flagCenter, "center", "0,0", "Ring center as row,col")
	areaCmd.Flags().IntVar(&flagMin, "min", 0, "Smallest squared distance")
	areaCmd.Flags().IntVar(&flagMax, "max", 2, "Largest squared distance")
}

func runArea(cmd *cobra.Command, args []string) error {
	g, rules, err := loadBoard(args[0])
	if err != nil {
		return err
	}
	center, err := parseCell(g.Dims(), flagCenter)
	if err != nil {
		return err
	}
	ring := grid.NewArea(center, flagMin, flagMax)
	in := make(map[int]bool)
	for c := range ring.All() {
		in[c.Ix()] = true
	}
	logger.Info("ring", "center", center, "min", flagMin, "max", flagMax, "cells", len(in))

	fmt.Fprint(cmd.OutOrStdout(), g.Render(rules, func(c grid.Cell) (rune, bool) {
		return '*', in[c.Ix()]
	}))
	return nil
}
