package Queues

// Queue is a FIFO container. Implementations in this package are not safe
// for concurrent use.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item. Returns *EmptyQueueError when there is nothing to pop.
	Pop() (T, error)
	//Peek at the oldest item without removing it. The zero value when empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a growable ring buffer.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing array to fit the current content.
	Shrink()
	//Clear the queue, keeping the backing array.
	Clear()
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
