package puzzle

import "sort"

// Solution is the result of a shortest-path search.
type Solution struct {
	// Steps is the move sequence from start to end, or nil when no path
	// exists within the depth bound.
	Steps []Direction

	// EdgesTraversed counts the slide destinations expanded during the
	// search. Diagnostic only.
	EdgesTraversed int
}

// Found reports whether a path was found.
func (s Solution) Found() bool {
	return s.Steps != nil
}

// Len returns the number of moves, or 0 if unsolved.
func (s Solution) Len() int {
	return len(s.Steps)
}

// String returns the moves as a solution string ("DRD"), empty if unsolved.
func (s Solution) String() string {
	return FormatDirections(s.Steps)
}

// searchNode is a slide destination in the BFS frontier. Paths are kept as
// parent links so expanding a node does not copy its prefix.
type searchNode struct {
	pos    Point
	dir    Direction
	depth  int
	parent *searchNode
}

func (n *searchNode) path() []Direction {
	steps := make([]Direction, n.depth)
	for cur := n; cur.parent != nil; cur = cur.parent {
		steps[cur.depth-1] = cur.dir
	}
	return steps
}

// Solve finds a shortest move sequence from start to end with breadth-first
// search over slide destinations. Consecutive moves always turn onto the
// other axis. Branches longer than maxDepth moves are abandoned; a
// maxDepth of zero or less means no bound.
//
// Positions are visited at most once regardless of the direction they were
// reached from, so only the first shortest path is returned.
//
// Solve works on the board's static layout and never moves the player.
func Solve(b *Board, maxDepth int) Solution {
	var sol Solution
	visited := make(map[Point]bool)

	queue := []*searchNode{{pos: b.start}}
	for head := 0; head < len(queue); head++ {
		node := queue[head]

		if node.pos == b.end {
			sol.Steps = node.path()
			break
		}
		if maxDepth > 0 && node.depth > maxDepth {
			continue
		}
		if visited[node.pos] {
			continue
		}
		visited[node.pos] = true
		sol.EdgesTraversed++

		for _, d := range NextMoves(node.dir, node.parent != nil) {
			dest, steps := b.slideFrom(node.pos, d)
			if steps == 0 {
				continue
			}
			queue = append(queue, &searchNode{
				pos:    dest,
				dir:    d,
				depth:  node.depth + 1,
				parent: node,
			})
		}
	}

	return sol
}

// EnumerateOptions bounds an exhaustive search.
type EnumerateOptions struct {
	// MaxDepth abandons paths longer than this many moves (0 = unbounded).
	MaxDepth int
	// Limit stops after this many solutions (0 = all).
	Limit int
}

// Enumeration is the result of an exhaustive search.
type Enumeration struct {
	// Solutions holds every path found, shortest first.
	Solutions [][]Direction
	// EdgesTraversed counts the slides tried.
	EdgesTraversed int
}

// Solvable reports whether at least one solution was found.
func (e Enumeration) Solvable() bool {
	return len(e.Solutions) > 0
}

type dfsFrame struct {
	pos   Point
	moves []Direction
	next  int
}

// Enumerate lists every path from start to end that never revisits a
// position within the same path. Unlike Solve, positions may be revisited
// along different branches, so the cost can grow quickly on open boards;
// use opts to bound it.
//
// The search is depth-first with an explicit stack. A position joins the
// on-path set when its frame is pushed and leaves it when the frame is
// popped.
func Enumerate(b *Board, opts EnumerateOptions) Enumeration {
	var out Enumeration
	onPath := make(map[Point]bool)
	var path []Direction
	var stack []dfsFrame

	// enter pushes a frame for pos unless it ends the path.
	enter := func(pos Point) bool {
		if pos == b.end {
			out.Solutions = append(out.Solutions, append([]Direction(nil), path...))
			return false
		}
		if onPath[pos] {
			return false
		}
		if opts.MaxDepth > 0 && len(path) >= opts.MaxDepth {
			return false
		}
		onPath[pos] = true
		var moves []Direction
		if len(path) == 0 {
			moves = NextMoves(0, false)
		} else {
			moves = NextMoves(path[len(path)-1], true)
		}
		stack = append(stack, dfsFrame{pos: pos, moves: moves})
		return true
	}

	enter(b.start)
	for len(stack) > 0 {
		if opts.Limit > 0 && len(out.Solutions) >= opts.Limit {
			break
		}

		top := &stack[len(stack)-1]
		if top.next >= len(top.moves) {
			delete(onPath, top.pos)
			stack = stack[:len(stack)-1]
			if len(path) > 0 {
				path = path[:len(path)-1]
			}
			continue
		}

		d := top.moves[top.next]
		top.next++
		dest, steps := b.slideFrom(top.pos, d)
		if steps == 0 {
			continue
		}
		out.EdgesTraversed++

		path = append(path, d)
		if !enter(dest) {
			path = path[:len(path)-1]
		}
	}

	sort.SliceStable(out.Solutions, func(i, j int) bool {
		return len(out.Solutions[i]) < len(out.Solutions[j])
	})
	return out
}

// Verify simulates moves from the start without touching the player and
// reports whether they end on the goal. Every move must slide at least one
// cell.
func Verify(b *Board, moves []Direction) bool {
	pos := b.start
	for _, d := range moves {
		dest, steps := b.slideFrom(pos, d)
		if steps == 0 {
			return false
		}
		pos = dest
	}
	return pos == b.end
}
