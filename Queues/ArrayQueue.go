package Queues

// minCap is the smallest backing array a ring is grown to.
const minCap uint = 4

type ringQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue with room for initCap items before the first growth.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &ringQ[T]{content: make([]T, max(initCap, minCap))}
}

func (u *ringQ[T]) Empty() bool {
	return u.sz == 0
}

func (u *ringQ[T]) Size() uint {
	return u.sz
}

// resize moves the content to the front of a new array of newLen, newLen>=sz.
// Time: O(sz)
func (u *ringQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.sz > 0 {
		if u.head < u.tail {
			copy(nc, u.content[u.head:u.tail])
		} else {
			n := copy(nc, u.content[u.head:])
			copy(nc[n:], u.content[:u.tail])
		}
	}
	u.content = nc
	u.head, u.tail = 0, u.sz%newLen
}

func (u *ringQ[T]) Shrink() {
	u.resize(max(u.sz, minCap))
}

func (u *ringQ[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

// Push
// Time: amortized O(1)
func (u *ringQ[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz + u.sz>>1 + 1)
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

// Pop
// Time: O(1)
func (u *ringQ[T]) Pop() (T, error) {
	if u.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return t, nil
}

func (u *ringQ[T]) Peek() T {
	if u.Empty() {
		return *new(T)
	}
	return u.content[u.head]
}
