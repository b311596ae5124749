package circularlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gregoryjjb/cllsim/circularlist"
)

func newList(values ...int) *circularlist.List[int] {
	l := circularlist.New[int]()
	for _, v := range values {
		l.InsertEnd(v)
	}
	return l
}

func TestEmptyList(t *testing.T) {
	l := circularlist.New[int]()

	assert.Equal(t, "List is empty.", l.Display())
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Values())
	assert.False(t, l.Search(1))

	_, ok := l.Head()
	assert.False(t, ok)
}

func TestInsertFront(t *testing.T) {
	l := newList(1, 2)

	l.InsertFront(7)

	assert.True(t, l.Search(7))
	assert.Equal(t, []int{7, 1, 2}, l.Values())
	assert.Equal(t, "7 -> 1 -> 2 -> (head)", l.Display())

	head, ok := l.Head()
	require.True(t, ok)
	assert.Equal(t, 7, head)
}

func TestInsertEnd(t *testing.T) {
	l := newList(1, 2)

	l.InsertEnd(9)

	assert.Equal(t, "1 -> 2 -> 9 -> (head)", l.Display())
	head, _ := l.Head()
	assert.Equal(t, 1, head, "head must not move")
}

func TestInsertIntoEmpty(t *testing.T) {
	front := circularlist.New[int]()
	front.InsertFront(4)
	end := circularlist.New[int]()
	end.InsertEnd(4)

	assert.Equal(t, "4 -> (head)", front.Display())
	assert.Equal(t, front.Display(), end.Display())
}

func TestDeleteValue(t *testing.T) {
	tests := []struct {
		name    string
		in      []int
		value   int
		removed bool
		want    string
	}{
		{
			name:    "empty",
			in:      nil,
			value:   1,
			removed: false,
			want:    "List is empty.",
		},
		{
			name:    "only node",
			in:      []int{1},
			value:   1,
			removed: true,
			want:    "List is empty.",
		},
		{
			name:    "head of many",
			in:      []int{1, 2, 3},
			value:   1,
			removed: true,
			want:    "2 -> 3 -> (head)",
		},
		{
			name:    "middle",
			in:      []int{1, 2, 3},
			value:   2,
			removed: true,
			want:    "1 -> 3 -> (head)",
		},
		{
			name:    "tail",
			in:      []int{1, 2, 3},
			value:   3,
			removed: true,
			want:    "1 -> 2 -> (head)",
		},
		{
			name:    "missing",
			in:      []int{1, 2, 3},
			value:   4,
			removed: false,
			want:    "1 -> 2 -> 3 -> (head)",
		},
		{
			name:    "duplicate nearest head",
			in:      []int{5, 2, 5, 2},
			value:   2,
			removed: true,
			want:    "5 -> 5 -> 2 -> (head)",
		},
		{
			name:    "duplicate at head",
			in:      []int{5, 2, 5},
			value:   5,
			removed: true,
			want:    "2 -> 5 -> (head)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newList(tt.in...)
			assert.Equal(t, tt.removed, l.DeleteValue(tt.value))
			assert.Equal(t, tt.want, l.Display())
		})
	}
}

func TestDeleteSequence(t *testing.T) {
	l := newList(1, 2, 3)
	assert.Equal(t, "1 -> 2 -> 3 -> (head)", l.Display())

	assert.True(t, l.DeleteValue(2))
	assert.Equal(t, "1 -> 3 -> (head)", l.Display())

	assert.False(t, l.DeleteValue(2))
	assert.Equal(t, "1 -> 3 -> (head)", l.Display())
}

func TestClear(t *testing.T) {
	l := newList(1, 2, 3)
	l.InsertFront(0)

	l.Clear()
	assert.Equal(t, "List is empty.", l.Display())

	l.InsertFront(5)
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, "5 -> (head)", l.Display())
}

func TestRoundTrip(t *testing.T) {
	l := circularlist.New[int]()
	l.InsertFront(42)
	assert.True(t, l.DeleteValue(42))
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, "List is empty.", l.Display())
}

func TestLenTracksInsertsAndDeletes(t *testing.T) {
	l := circularlist.New[int]()
	want := 0

	for i := 0; i < 20; i++ {
		if i%3 == 0 {
			l.InsertFront(i % 7)
		} else {
			l.InsertEnd(i % 7)
		}
		want++

		if i%4 == 0 && l.DeleteValue((i+2)%7) {
			want--
		}
		if l.DeleteValue(100) {
			want--
		}

		assert.Equal(t, want, l.Len())
		assert.Len(t, l.Values(), want)
	}
}

func TestStringer(t *testing.T) {
	l := newList(3, 1)
	assert.Equal(t, l.Display(), l.String())
}

func TestStrings(t *testing.T) {
	l := circularlist.New[string]()
	l.InsertEnd("b")
	l.InsertFront("a")

	assert.Equal(t, "a -> b -> (head)", l.Display())
	assert.True(t, l.DeleteValue("b"))
	assert.False(t, l.Search("b"))
}
