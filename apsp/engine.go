package apsp

import "fmt"

// Engine memoizes the Floyd–Warshall distance and next-hop tables of a Matrix.
type Engine struct {
	src    Matrix
	dist   [][]int
	next   [][]int
	fresh  bool
	builds int
}

// New binds an Engine to src. Nothing is computed until the first query.
func New(src Matrix) *Engine {
	return &Engine{src: src}
}

// Invalidate marks the tables stale; the next query recomputes them.
func (e *Engine) Invalidate() { e.fresh = false }

// Fresh reports whether the tables reflect the current matrix.
func (e *Engine) Fresh() bool { return e.fresh }

// Builds reports how many times the tables were recomputed.
func (e *Engine) Builds() int { return e.builds }

// Size returns the number of cities of the bound matrix.
func (e *Engine) Size() int { return e.src.Size() }

// EnsureFresh recomputes the tables if they are stale.
//
// Stage 1: seed dist from the matrix (Infinity for absent edges, explicit 0 on
// the diagonal) and next with the direct successor.
// Stage 2: relax every pair through every intermediate city k.
// Complexity: O(N³) time when stale, O(1) otherwise.
func (e *Engine) EnsureFresh() {
	if e.fresh {
		return
	}

	n := e.src.Size()
	e.dist = makeSquare(n)
	e.next = makeSquare(n)

	// Stage 1: seed.
	var i, j, k, w int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w = e.src.Weight(i, j)
			switch {
			case i == j:
				e.dist[i][j] = 0
				e.next[i][j] = i
			case w == 0 || w >= Infinity:
				e.dist[i][j] = Infinity
				e.next[i][j] = NoHop
			default:
				e.dist[i][j] = w
				e.next[i][j] = j
			}
		}
	}

	// Stage 2: triple loop, strict improvement only.
	var dik, via int
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			dik = e.dist[i][k]
			if dik >= Infinity {
				continue
			}
			for j = 0; j < n; j++ {
				via = dik + e.dist[k][j]
				if via < e.dist[i][j] {
					e.dist[i][j] = via
					e.next[i][j] = e.next[i][k]
				}
			}
		}
	}

	e.fresh = true
	e.builds++
}

// Distance returns the shortest distance from i to j, Infinity when
// disconnected.
func (e *Engine) Distance(i, j int) (int, error) {
	if err := e.check(i, j); err != nil {
		return 0, err
	}
	e.EnsureFresh()

	return e.dist[i][j], nil
}

// NextHop returns the city after i on a shortest path to j, NoHop when
// disconnected, and i itself when i == j.
func (e *Engine) NextHop(i, j int) (int, error) {
	if err := e.check(i, j); err != nil {
		return 0, err
	}
	e.EnsureFresh()

	return e.next[i][j], nil
}

// Path returns the cities on a shortest path from i to j, both inclusive.
func (e *Engine) Path(i, j int) ([]int, error) {
	if err := e.check(i, j); err != nil {
		return nil, err
	}
	e.EnsureFresh()

	if e.next[i][j] == NoHop {
		return nil, fmt.Errorf("Path(%d,%d): %w", i, j, ErrNoPath)
	}
	path := []int{i}
	for cur := i; cur != j; {
		cur = e.next[cur][j]
		path = append(path, cur)
	}

	return path, nil
}

// Distances returns a copy of the distance table.
func (e *Engine) Distances() [][]int {
	e.EnsureFresh()

	return cloneSquare(e.dist)
}

// NextHops returns a copy of the next-hop table.
func (e *Engine) NextHops() [][]int {
	e.EnsureFresh()

	return cloneSquare(e.next)
}

func (e *Engine) check(i, j int) error {
	n := e.src.Size()
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("(%d,%d) with %d cities: %w", i, j, n, ErrIndexOutOfRange)
	}

	return nil
}

func makeSquare(n int) [][]int {
	backing := make([]int, n*n)
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = backing[i*n : (i+1)*n : (i+1)*n]
	}

	return rows
}

func cloneSquare(src [][]int) [][]int {
	out := makeSquare(len(src))
	for i := range src {
		copy(out[i], src[i])
	}

	return out
}
