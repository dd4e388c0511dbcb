package garden

// RandomSource supplies uniform draws. *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// RandomTileType draws a category uniformly.
func RandomTileType(rng RandomSource) TileType {
	return TileTypes[rng.IntN(TileTypeCount)]
}

// TileQueue is a first-in-first-out sequence of upcoming tile types.
type TileQueue struct {
	items []TileType
	head  int
}

// NewTileQueue creates a queue holding the given types in order.
func NewTileQueue(types ...TileType) *TileQueue {
	q := &TileQueue{}
	q.items = append(q.items, types...)
	return q
}

// Fill appends n random draws.
func (q *TileQueue) Fill(rng RandomSource, n int) {
	for range n {
		q.Push(RandomTileType(rng))
	}
}

// Push appends a type to the back of the queue.
func (q *TileQueue) Push(t TileType) {
	q.items = append(q.items, t)
}

// Pop removes the front type. It returns false on an empty queue.
func (q *TileQueue) Pop() (TileType, bool) {
	if q.Len() == 0 {
		return 0, false
	}
	t := q.items[q.head]
	q.head++

	// Reclaim the consumed prefix once it dominates the buffer.
	if q.head > 32 && q.head*2 > len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return t, true
}

// Len is the number of queued types.
func (q *TileQueue) Len() int {
	return len(q.items) - q.head
}

// Peek returns up to n upcoming types without removing them.
func (q *TileQueue) Peek(n int) []TileType {
	if n > q.Len() {
		n = q.Len()
	}
	out := make([]TileType, n)
	copy(out, q.items[q.head:q.head+n])
	return out
}

// Clear empties the queue.
func (q *TileQueue) Clear() {
	q.items = q.items[:0]
	q.head = 0
}
