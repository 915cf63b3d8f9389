// Package ordering decides kanban positions for tasks within a column.
//
// Positions are sparse integers so that most moves touch a single row: a
// task dropped between two neighbours takes the midpoint of their positions.
// Only when no free integer remains is the column renumbered.
package ordering

import "math"

const (
	DefaultBase   int64 = 1000
	DefaultStride int64 = 1000
)

// Plan is the outcome of placing one task in a column.
type Plan struct {
	// Position is the new position of the placed task.
	Position int64
	// Renumbered holds fresh positions for the column's existing entries, in
	// their current order, when the column had to be respaced. It is nil when
	// no other row changes.
	Renumbered []int64
}

// NeedsRenumber reports whether applying the plan rewrites other rows.
func (p Plan) NeedsRenumber() bool {
	return p.Renumbered != nil
}

// Strategy computes placements. column holds the positions of the
// destination column in ascending order, excluding the task being placed.
type Strategy interface {
	Insert(column []int64, index int) Plan
	Append(column []int64) Plan
}

// Sparse spaces positions Stride apart starting at Base.
type Sparse struct {
	Base   int64
	Stride int64
}

func NewSparse() Sparse {
	return Sparse{Base: DefaultBase, Stride: DefaultStride}
}

// Append places the task after the last entry of the column.
func (s Sparse) Append(column []int64) Plan {
	return s.Insert(column, len(column))
}

// Insert places the task so that it ends up at index among the column
// entries. Out of range indexes are clamped to the start or end.
func (s Sparse) Insert(column []int64, index int) Plan {
	n := len(column)
	index = max(0, min(index, n))

	if n == 0 {
		return Plan{Position: s.Base}
	}

	switch index {
	case n:
		prev := column[n-1]
		if prev <= math.MaxInt64-s.Stride {
			return Plan{Position: prev + s.Stride}
		}
	case 0:
		next := column[0]
		pos := next - s.Stride
		if pos < 1 {
			pos = next / 2
		}
		if pos >= 1 && pos < next {
			return Plan{Position: pos}
		}
	default:
		prev, next := column[index-1], column[index]
		if next-prev >= 2 {
			return Plan{Position: prev + (next-prev)/2}
		}
	}

	return s.renumber(n, index)
}

// renumber respaces the column with the placed task at index.
func (s Sparse) renumber(n, index int) Plan {
	plan := Plan{
		Position:   s.Base + int64(index)*s.Stride,
		Renumbered: make([]int64, n),
	}
	for k := range n {
		slot := k
		if k >= index {
			slot++
		}
		plan.Renumbered[k] = s.Base + int64(slot)*s.Stride
	}
	return plan
}
