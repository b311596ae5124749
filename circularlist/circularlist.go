// Package circularlist implements a circular singly linked list.
//
// Nodes are kept in an arena and linked by index, so the link from the
// tail back to the head is a plain index rather than a pointer cycle.
// Slots released by DeleteValue are recycled by later inserts.
//
// A List is not safe for concurrent use.
package circularlist

import (
	"fmt"
	"strings"
)

const nilIndex = -1

const (
	// Separator joins consecutive values in Display
	Separator = " -> "
	// WrapMarker ends a non-empty Display, showing the ring returns to head
	WrapMarker = "(head)"
	// EmptyMessage is what Display returns for an empty list
	EmptyMessage = "List is empty."
)

type node[T comparable] struct {
	value T
	next  int
}

type List[T comparable] struct {
	nodes []node[T]
	free  []int
	head  int
}

func New[T comparable]() *List[T] {
	return &List[T]{
		head: nilIndex,
	}
}

// InsertFront adds value before the current head and makes it the new head.
func (l *List[T]) InsertFront(value T) {
	if l.head == nilIndex {
		l.head = l.alloc(value)
		l.nodes[l.head].next = l.head
		return
	}

	tail := l.tail()
	n := l.alloc(value)
	l.nodes[n].next = l.head
	l.nodes[tail].next = n
	l.head = n
}

// InsertEnd adds value as the new tail. The head does not move.
func (l *List[T]) InsertEnd(value T) {
	if l.head == nilIndex {
		l.head = l.alloc(value)
		l.nodes[l.head].next = l.head
		return
	}

	tail := l.tail()
	n := l.alloc(value)
	l.nodes[tail].next = n
	l.nodes[n].next = l.head
}

// DeleteValue removes the first node equal to value, scanning from head in
// ring order. Head is checked first and is not checked again when the scan
// wraps around. It reports whether a node was removed.
func (l *List[T]) DeleteValue(value T) bool {
	if l.head == nilIndex {
		return false
	}

	if l.nodes[l.head].value == value {
		old := l.head
		if l.nodes[old].next == old {
			l.head = nilIndex
			l.release(old)
			return true
		}

		tail := l.tail()
		l.nodes[tail].next = l.nodes[old].next
		l.head = l.nodes[old].next
		l.release(old)
		return true
	}

	prev := l.head
	for l.nodes[prev].next != l.head {
		curr := l.nodes[prev].next
		if l.nodes[curr].value == value {
			l.nodes[prev].next = l.nodes[curr].next
			l.release(curr)
			return true
		}
		prev = curr
	}

	return false
}

// Search reports whether any node holds value.
func (l *List[T]) Search(value T) bool {
	found := false
	l.each(func(v T) bool {
		if v == value {
			found = true
			return false
		}
		return true
	})
	return found
}

// Clear discards every node.
func (l *List[T]) Clear() {
	l.nodes = nil
	l.free = nil
	l.head = nilIndex
}

// Display renders the values in ring order starting at head, for example
// "1 -> 2 -> 3 -> (head)". An empty list renders EmptyMessage.
func (l *List[T]) Display() string {
	if l.head == nilIndex {
		return EmptyMessage
	}

	var sb strings.Builder
	l.each(func(v T) bool {
		fmt.Fprint(&sb, v)
		sb.WriteString(Separator)
		return true
	})
	sb.WriteString(WrapMarker)
	return sb.String()
}

func (l *List[T]) String() string {
	return l.Display()
}

// Len counts the nodes reachable from head.
func (l *List[T]) Len() int {
	n := 0
	l.each(func(T) bool {
		n++
		return true
	})
	return n
}

// Values returns the values in ring order starting at head.
func (l *List[T]) Values() []T {
	var vs []T
	l.each(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// Head returns the value of the head node, if any.
func (l *List[T]) Head() (T, bool) {
	if l.head == nilIndex {
		var value T
		return value, false
	}
	return l.nodes[l.head].value, true
}

// each visits every node once starting at head until fn returns false.
func (l *List[T]) each(fn func(T) bool) {
	if l.head == nilIndex {
		return
	}

	i := l.head
	for {
		if !fn(l.nodes[i].value) {
			return
		}
		i = l.nodes[i].next
		if i == l.head {
			return
		}
	}
}

// tail returns the node whose next is head. The list must not be empty.
func (l *List[T]) tail() int {
	i := l.head
	for l.nodes[i].next != l.head {
		i = l.nodes[i].next
	}
	return i
}

func (l *List[T]) alloc(value T) int {
	if n := len(l.free); n > 0 {
		i := l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[i] = node[T]{value: value, next: nilIndex}
		return i
	}

	l.nodes = append(l.nodes, node[T]{value: value, next: nilIndex})
	return len(l.nodes) - 1
}

func (l *List[T]) release(i int) {
	var zero T
	l.nodes[i] = node[T]{value: zero, next: nilIndex}
	l.free = append(l.free, i)
}
