// Package assignment_test benchmarks the solver.
//
// Policy:
//   - Inputs are built outside the timer from fixed seeds.
//   - The Workspace variants measure the steady state without buffer
//     reallocation.
package assignment_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lapkit/assignment"
	"github.com/katalvlaran/lapkit/builder"
	"github.com/katalvlaran/lapkit/matrix"
)

func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{16, 64, builder.DefaultOrder} {
		m, err := builder.Random(n)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := assignment.Solve(m); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkWorkspaceSolve(b *testing.B) {
	m, err := builder.Random(builder.DefaultOrder)
	if err != nil {
		b.Fatal(err)
	}
	ws := assignment.NewWorkspace()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = ws.Solve(m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReduce(b *testing.B) {
	m, err := builder.Random(builder.DefaultOrder)
	if err != nil {
		b.Fatal(err)
	}
	tab, err := matrix.NewDense(builder.DefaultOrder, builder.DefaultOrder)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		if err = tab.CopyFrom(m); err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		if err = assignment.Reduce(tab); err != nil {
			b.Fatal(err)
		}
	}
}
