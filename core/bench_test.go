// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/pathgrid/core"
)

// BenchmarkAddNode measures inserting nodes along a row.
func BenchmarkAddNode(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddNode(core.NewNode(i, 0, core.Empty))
	}
}

// BenchmarkConnect measures re-connecting an existing pair (overwrite path).
func BenchmarkConnect(b *testing.B) {
	g := core.NewGraph()
	u, v := core.NewNode(0, 0, core.Empty), core.NewNode(1, 0, core.Empty)
	_ = g.AddNode(u)
	_ = g.AddNode(v)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Connect(u, v, 1)
	}
}

// BenchmarkGetNode measures coordinate lookups on a 75×75 block.
func BenchmarkGetNode(b *testing.B) {
	g := core.NewGraph()
	for y := 0; y < 75; y++ {
		for x := 0; x < 75; x++ {
			_ = g.AddNode(core.NewNode(x, y, core.Empty))
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.GetNode(i%75, (i/75)%75)
	}
}
