package project

import (
	"sort"

	"github.com/complexityscope/complexityscope/internal/metrics"
)

// infinity is the Floyd–Warshall sentinel, halved so adding two of them
// never overflows an int.
const infinity = int(^uint(0)>>1) / 2

// buildAdjacencyMatrix sets A[x][y] = 1 whenever x != y and some
// dependency of reports[x] resolves to reports[y]'s path.
func buildAdjacencyMatrix(reports []*metrics.ModuleReport) Matrix {
	n := len(reports)
	adjacency := NewMatrix(n)

	for x, from := range reports {
		for y, to := range reports {
			if x == y {
				continue
			}

			for _, dep := range from.Dependencies {
				if resolves(dep, from.Path, to.Path) {
					adjacency.Set(x, y, 1)

					break
				}
			}
		}
	}

	return adjacency
}

// firstOrderDensity is the percentage of adjacency-matrix cells that are 1.
func firstOrderDensity(adjacency Matrix) float64 {
	if adjacency.N == 0 {
		return 0
	}

	return float64(adjacency.CountOnes()) / float64(adjacency.N*adjacency.N) * 100
}

// floydWarshall computes the all-pairs shortest distance matrix over
// adjacency, with D[i][i] = 1 and unreachable pairs left at infinity.
func floydWarshall(adjacency Matrix) [][]int {
	n := adjacency.N
	dist := make([][]int, n)

	for i := range dist {
		dist[i] = make([]int, n)

		for j := range dist[i] {
			switch {
			case i == j:
				dist[i][j] = 1
			case adjacency.At(i, j) == 1:
				dist[i][j] = 1
			default:
				dist[i][j] = infinity
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if dist[i][k] == infinity {
				continue
			}

			for j := 0; j < n; j++ {
				if dist[k][j] == infinity {
					continue
				}

				if candidate := dist[i][k] + dist[k][j]; candidate < dist[i][j] {
					dist[i][j] = candidate
				}
			}
		}
	}

	return dist
}

// toVisibility converts a distance matrix into a zero-diagonal visibility
// matrix and the change cost: the percentage of distance-matrix cells
// (including the diagonal) that are finite.
func toVisibility(dist [][]int) (Matrix, float64) {
	n := len(dist)
	visibility := NewMatrix(n)

	reachable := 0

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if dist[i][j] >= infinity {
				continue
			}

			reachable++

			if i != j {
				visibility.Set(i, j, 1)
			}
		}
	}

	changeCost := 0.0
	if n > 0 {
		changeCost = float64(reachable) / float64(n*n) * 100
	}

	return visibility, changeCost
}

// coreSize is the percentage of modules whose fan-in and fan-out in the
// visibility matrix both meet or exceed the median fan-in/fan-out. It is
// defined to be zero whenever the adjacency graph has no edges at all.
func coreSize(visibility Matrix, density float64) float64 {
	if density == 0 {
		return 0
	}

	n := visibility.N
	fanIn := make([]int, n)
	fanOut := make([]int, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if visibility.At(i, j) == 1 {
				fanOut[i]++
				fanIn[j]++
			}
		}
	}

	medIn := median(fanIn)
	medOut := median(fanOut)

	count := 0

	for i := 0; i < n; i++ {
		if float64(fanIn[i]) >= medIn && float64(fanOut[i]) >= medOut {
			count++
		}
	}

	return float64(count) / float64(n) * 100
}

// median returns the median of xs without mutating it.
func median(xs []int) float64 {
	if len(xs) == 0 {
		return 0
	}

	sorted := append([]int(nil), xs...)
	sort.Ints(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}

	return float64(sorted[mid-1]+sorted[mid]) / 2
}
