package mines

import "github.com/sirupsen/logrus"

var Log = logrus.New()

// celltodo is a FIFO of cell indexes threaded through a next-pointer slice.
// Each index can be queued at most once over the lifetime of the queue, so
// the number of pushes is bounded by the board size.
type celltodo struct {
	next       []int
	seen       []bool
	head, tail int
}

func newCelltodo(size int) *celltodo {
	return &celltodo{
		next: make([]int, size),
		seen: make([]bool, size),
		head: -1,
		tail: -1,
	}
}

// add queues i unless it has been queued before.
func (std *celltodo) add(i int) {
	if std.seen[i] {
		return
	}
	std.seen[i] = true
	if std.tail >= 0 {
		std.next[std.tail] = i
	} else {
		std.head = i
	}
	std.tail = i
	std.next[i] = -1
}

func (std *celltodo) pop() (i int, ok bool) {
	if std.head < 0 {
		return -1, false
	}
	i = std.head
	std.head = std.next[i]
	if std.head < 0 {
		std.tail = -1
	}
	return i, true
}
