package targeting

import "math/rand/v2"

// Seating exposes the ordered seats of a match. Adjacency only ever considers
// living seats, so neighbours shift as players are defeated.
type Seating interface {
	Len() int
	Alive(seat int) bool
}

// LeftOf returns the closest living seat counter-clockwise of seat, or -1.
func LeftOf(s Seating, seat int) int {
	n := s.Len()
	for i := 1; i < n; i++ {
		idx := (seat - i + n) % n
		if s.Alive(idx) {
			return idx
		}
	}
	return -1
}

// RightOf returns the closest living seat clockwise of seat, or -1.
func RightOf(s Seating, seat int) int {
	n := s.Len()
	for i := 1; i < n; i++ {
		idx := (seat + i) % n
		if s.Alive(idx) {
			return idx
		}
	}
	return -1
}

// Adjacent reports whether other is the living left or right neighbour of seat.
func Adjacent(s Seating, seat, other int) bool {
	if seat == other || seat < 0 || other < 0 {
		return false
	}
	return LeftOf(s, seat) == other || RightOf(s, seat) == other
}

// Neighbours returns the distinct living neighbours of seat, left first.
func Neighbours(s Seating, seat int) []int {
	left, right := LeftOf(s, seat), RightOf(s, seat)
	out := make([]int, 0, 2)
	if left >= 0 {
		out = append(out, left)
	}
	if right >= 0 && right != left {
		out = append(out, right)
	}
	return out
}

// RandomSubset picks min(k, len(ids)) distinct ids uniformly at random.
func RandomSubset(r *rand.Rand, ids []string, k int) []string {
	if k > len(ids) {
		k = len(ids)
	}
	if k <= 0 {
		return nil
	}
	perm := r.Perm(len(ids))
	out := make([]string, 0, k)
	for _, i := range perm[:k] {
		out = append(out, ids[i])
	}
	return out
}
