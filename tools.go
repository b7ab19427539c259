package aocenv

import (
	"container/heap"
	"sort"
)

// Puzzle toolkit: the small set of structures and algorithms that come up
// every December. Grounded in what solution files actually reach for, not
// in completeness.

// Point is a 2D grid coordinate.
type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// MDist returns the manhattan distance between p and q.
func (p Point) MDist(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Cardinal directions, up/down/left/right.
var Cardinals = [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Diagonals in addition to the cardinals.
var Diagonals = [4]Point{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

// Grid is a rectangular byte grid addressed by Point, X across and Y down.
type Grid struct {
	Rows [][]byte
	W, H int
}

// NewGrid builds a grid from input lines. Ragged lines keep their own
// length; In guards access.
func NewGrid(lines []string) *Grid {
	rows := make([][]byte, len(lines))
	w := 0
	for i, line := range lines {
		rows[i] = []byte(line)
		if len(line) > w {
			w = len(line)
		}
	}
	return &Grid{Rows: rows, W: w, H: len(rows)}
}

func (g *Grid) In(p Point) bool {
	return p.Y >= 0 && p.Y < g.H && p.X >= 0 && p.X < len(g.Rows[p.Y])
}

func (g *Grid) At(p Point) byte { return g.Rows[p.Y][p.X] }

func (g *Grid) Set(p Point, b byte) { g.Rows[p.Y][p.X] = b }

// Neighbors returns the in-bounds neighbors of p.
func (g *Grid) Neighbors(p Point, diagonal bool) []Point {
	dirs := Cardinals[:]
	if diagonal {
		dirs = append(dirs, Diagonals[:]...)
	}
	var out []Point
	for _, d := range dirs {
		if q := p.Add(d); g.In(q) {
			out = append(out, q)
		}
	}
	return out
}

// Find returns the first cell containing b, scanning row by row.
func (g *Grid) Find(b byte) (Point, bool) {
	for y, row := range g.Rows {
		for x, c := range row {
			if c == b {
				return Point{x, y}, true
			}
		}
	}
	return Point{}, false
}

// BFS walks the graph reachable from start in breadth-first order and
// returns the distance of every reached node.
func BFS[N comparable](start N, next func(N) []N) map[N]int {
	dist := map[N]int{start: 0}
	queue := []N{start}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, n := range next(node) {
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[node] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

// Edge is a weighted transition for Dijkstra.
type Edge[N comparable] struct {
	To   N
	Cost int
}

type pqItem[N comparable] struct {
	node N
	dist int
}

type pq[N comparable] []pqItem[N]

func (q pq[N]) Len() int            { return len(q) }
func (q pq[N]) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q pq[N]) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *pq[N]) Push(x any)         { *q = append(*q, x.(pqItem[N])) }
func (q *pq[N]) Pop() any           { old := *q; n := len(old); it := old[n-1]; *q = old[:n-1]; return it }

// Dijkstra returns the cheapest cost from start to goal, or ok=false when
// goal is unreachable.
func Dijkstra[N comparable](start, goal N, next func(N) []Edge[N]) (cost int, ok bool) {
	dist := map[N]int{start: 0}
	done := map[N]bool{}
	q := &pq[N]{{node: start, dist: 0}}
	for q.Len() > 0 {
		it := heap.Pop(q).(pqItem[N])
		if done[it.node] {
			continue
		}
		done[it.node] = true
		if it.node == goal {
			return it.dist, true
		}
		for _, e := range next(it.node) {
			nd := it.dist + e.Cost
			if cur, seen := dist[e.To]; !seen || nd < cur {
				dist[e.To] = nd
				heap.Push(q, pqItem[N]{node: e.To, dist: nd})
			}
		}
	}
	return 0, false
}

// Interval is the half-open-agnostic [Lo, Hi] pair used by MergeIntervals.
type Interval struct {
	Lo, Hi int
}

// MergeIntervals returns the sorted union of overlapping or touching
// intervals.
func MergeIntervals(in []Interval) []Interval {
	if len(in) == 0 {
		return nil
	}
	sorted := make([]Interval, len(in))
	copy(sorted, in)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lo < sorted[j].Lo })

	out := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &out[len(out)-1]
		if iv.Lo <= last.Hi {
			if iv.Hi > last.Hi {
				last.Hi = iv.Hi
			}
			continue
		}
		out = append(out, iv)
	}
	return out
}

// CRT solves x ≡ a[i] (mod n[i]) for pairwise coprime moduli using the
// Chinese Remainder Theorem.
func CRT(n, a []int64) int64 {
	var prod int64 = 1
	for _, m := range n {
		prod *= m
	}
	var sum int64
	for i := range n {
		p := prod / n[i]
		sum += a[i] * modInverse(p, n[i]) * p
	}
	return ((sum % prod) + prod) % prod
}

// modInverse computes p^-1 mod m via the extended Euclidean algorithm.
func modInverse(p, m int64) int64 {
	g, x, _ := extGCD(p%m, m)
	if g != 1 && g != -1 {
		return 0
	}
	return ((x % m) + m) % m
}

func extGCD(a, b int64) (g, x, y int64) {
	if a == 0 {
		return b, 0, 1
	}
	g, x1, y1 := extGCD(b%a, a)
	return g, y1 - (b/a)*x1, x1
}
