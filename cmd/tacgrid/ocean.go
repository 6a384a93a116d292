package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tacgrid/grid"
	"github.com/katalvlaran/tacgrid/ocean"
)

var oceanCmd = &cobra.Command{
	Use:   "ocean <board>",
	Short: "Mark water connected to the board border",
	Long:  `Renders the board with ocean cells drawn as 'O'. Enclosed lakes keep their water symbol.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runOcean,
}

func runOcean(cmd *cobra.Command, args []string) error {
	g, rules, err := loadBoard(args[0])
	if err != nil {
		return err
	}
	f := ocean.New(g, rules)
	f.Execute()
	logger.Info("ocean flood done", "board", g.Name, "ocean", f.Count())

	fmt.Fprint(cmd.OutOrStdout(), g.Render(rules, func(c grid.Cell) (rune, bool) {
		return 'O', f.Ocean(c)
	}))
	return nil
}
