package parser

// arena is a typed bump allocator for parser bookkeeping records that live
// as long as one parse. When a chunk fills up, a new chunk is allocated at
// 1.5x the previous size; earlier chunks stay reachable through the
// pointers handed out.
type arena[T any] struct {
	chunk []T
	index int
}

func newArena[T any](startLen int) *arena[T] {
	return &arena[T]{chunk: make([]T, startLen)}
}

// make returns a pointer to a zeroed T.
func (a *arena[T]) make() *T {
	if a.index == len(a.chunk) {
		a.resize()
	}
	n := &a.chunk[a.index]
	a.index++
	return n
}

//go:noinline
func (a *arena[T]) resize() {
	n := len(a.chunk)
	n += n >> 1
	if n < 4 {
		n = 4
	}
	a.chunk = make([]T, n)
	a.index = 0
}
