package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/tacgrid/board"
	"github.com/katalvlaran/tacgrid/grid"
)

// loadBoard reads the rules table and the board file named by path.
func loadBoard(path string) (*board.Grid, *board.Rules, error) {
	rules, err := board.LoadRules(flagRules)
	if err != nil {
		return nil, nil, err
	}
	g, err := board.LoadGrid(rules, path)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("loaded board", "name", g.Name, "dims", g.Dims(), "tiles", len(rules.Tiles())-1)
	return g, rules, nil
}

// parseCell parses "row,col" into a valid cell of d.
func parseCell(d grid.Dims, s string) (grid.Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return grid.Cell{}, fmt.Errorf("cell %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Cell{}, fmt.Errorf("cell %q: row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Cell{}, fmt.Errorf("cell %q: col: %w", s, err)
	}
	if !d.Contains(row, col) {
		return grid.Cell{}, fmt.Errorf("cell %q: outside %v board", s, d)
	}
	return d.Cell(row, col), nil
}
