package floodfill_test

import (
	"testing"

	"github.com/katalvlaran/tacgrid/floodfill"
	"github.com/katalvlaran/tacgrid/grid"
)

// BenchmarkExecute_Reset measures a full flood of a 128×128 open board with
// buffer reuse between runs; steady state should not allocate.
func BenchmarkExecute_Reset(b *testing.B) {
	d := grid.Dims{Rows: 128, Cols: 128}
	ff := floodfill.New(d, rangeRings{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ff.Reset()
		ff.Execute()
	}
}
