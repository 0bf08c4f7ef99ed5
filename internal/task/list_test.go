package task

import (
	"reflect"
	"testing"
)

func TestCursorStaysInRange(t *testing.T) {
	t.Parallel()

	moves := []func(l *List){
		(*List).Down, (*List).Down, (*List).Down, (*List).Down, (*List).Down,
		(*List).Up, (*List).Up, (*List).Up, (*List).Up, (*List).Up, (*List).Up,
		(*List).Last, (*List).Down, (*List).First, (*List).Up,
	}

	t.Run("empty list", func(t *testing.T) {
		l := NewList(nil)
		for _, mv := range moves {
			mv(l)
			if l.Cursor() != 0 {
				t.Fatalf("expected cursor pinned to 0 on an empty list; got %d", l.Cursor())
			}
		}
	})

	t.Run("three items", func(t *testing.T) {
		l := NewList([]string{"a", "b", "c"})
		for i, mv := range moves {
			mv(l)
			if c := l.Cursor(); c < 0 || c > 2 {
				t.Fatalf("move %d: expected cursor in [0,2]; got %d", i, c)
			}
		}
	})
}

func TestNavigationStopsAtBoundaries(t *testing.T) {
	t.Parallel()

	l := NewList([]string{"a", "b", "c"})
	l.Up()
	if l.Cursor() != 0 {
		t.Fatalf("expected Up at the top to be a no-op; got cursor %d", l.Cursor())
	}
	l.Last()
	l.Down()
	if l.Cursor() != 2 {
		t.Fatalf("expected Down at the bottom to be a no-op; got cursor %d", l.Cursor())
	}
	l.First()
	if l.Cursor() != 0 {
		t.Fatalf("expected First to move to 0; got %d", l.Cursor())
	}
}

func TestDragPairIsInverse(t *testing.T) {
	t.Parallel()

	l := NewList([]string{"a", "b", "c"})
	l.Down() // focus "b"

	if !l.DragUp() {
		t.Fatalf("expected DragUp to move the item")
	}
	if !reflect.DeepEqual(l.Items(), []string{"b", "a", "c"}) || l.Cursor() != 0 {
		t.Fatalf("expected [b a c] with cursor 0; got %v with cursor %d", l.Items(), l.Cursor())
	}
	if !l.DragDown() {
		t.Fatalf("expected DragDown to move the item back")
	}
	if !reflect.DeepEqual(l.Items(), []string{"a", "b", "c"}) || l.Cursor() != 1 {
		t.Fatalf("expected the original order restored; got %v with cursor %d", l.Items(), l.Cursor())
	}
}

func TestDragAtBoundariesIsNoop(t *testing.T) {
	t.Parallel()

	l := NewList([]string{"a", "b"})
	if l.DragUp() {
		t.Fatalf("expected DragUp at the top to report false")
	}
	l.Last()
	if l.DragDown() {
		t.Fatalf("expected DragDown at the bottom to report false")
	}
	if !reflect.DeepEqual(l.Items(), []string{"a", "b"}) {
		t.Fatalf("expected order untouched; got %v", l.Items())
	}

	empty := NewList(nil)
	if empty.DragUp() || empty.DragDown() {
		t.Fatalf("expected drags on an empty list to report false")
	}
}

func TestDeleteLastItemReclampsCursor(t *testing.T) {
	t.Parallel()

	l := NewList([]string{"a", "b", "c"})
	l.Last()
	removed, ok := l.Delete()
	if !ok || removed != "c" {
		t.Fatalf("expected to delete %q; got %q, %v", "c", removed, ok)
	}
	if l.Len() != 2 || l.Cursor() != 1 {
		t.Fatalf("expected 2 items with cursor 1; got %d items with cursor %d", l.Len(), l.Cursor())
	}
}

func TestDeleteOnlyItem(t *testing.T) {
	t.Parallel()

	l := NewList([]string{"a"})
	if _, ok := l.Delete(); !ok {
		t.Fatalf("expected the delete to happen")
	}
	if l.Len() != 0 || l.Cursor() != 0 {
		t.Fatalf("expected an empty list with cursor 0; got %d items with cursor %d", l.Len(), l.Cursor())
	}
	if _, ok := l.Delete(); ok {
		t.Fatalf("expected delete on an empty list to report false")
	}
}

func TestTransferRoundTrip(t *testing.T) {
	t.Parallel()

	src := NewList([]string{"a", "b", "c"})
	dst := NewList([]string{"x"})
	src.Down() // focus "b"

	title, ok := src.Transfer(dst)
	if !ok || title != "b" {
		t.Fatalf("expected to transfer %q; got %q, %v", "b", title, ok)
	}
	if !reflect.DeepEqual(src.Items(), []string{"a", "c"}) {
		t.Fatalf("expected source [a c]; got %v", src.Items())
	}
	if !reflect.DeepEqual(dst.Items(), []string{"x", "b"}) {
		t.Fatalf("expected destination [x b]; got %v", dst.Items())
	}

	// Back again: contents round-trip, position reflects append-at-end.
	dst.Last()
	if _, ok := dst.Transfer(src); !ok {
		t.Fatalf("expected the transfer back to happen")
	}
	if !reflect.DeepEqual(src.Items(), []string{"a", "c", "b"}) {
		t.Fatalf("expected source [a c b]; got %v", src.Items())
	}
	if !reflect.DeepEqual(dst.Items(), []string{"x"}) {
		t.Fatalf("expected destination [x]; got %v", dst.Items())
	}
}

func TestTransferFromEmptyListIsNoop(t *testing.T) {
	t.Parallel()

	src := NewList(nil)
	dst := NewList([]string{"x"})
	if _, ok := src.Transfer(dst); ok {
		t.Fatalf("expected transfer from an empty list to report false")
	}
	if !reflect.DeepEqual(dst.Items(), []string{"x"}) {
		t.Fatalf("expected destination untouched; got %v", dst.Items())
	}
}

func TestInsertAtCursor(t *testing.T) {
	t.Parallel()

	l := NewList([]string{"a", "b"})
	l.Down()
	l.Insert("new")
	if !reflect.DeepEqual(l.Items(), []string{"a", "new", "b"}) {
		t.Fatalf("expected [a new b]; got %v", l.Items())
	}
	if got, _ := l.Title(); got != "new" {
		t.Fatalf("expected focus to stay on the inserted item; got %q", got)
	}

	empty := NewList(nil)
	empty.Insert("first")
	if !reflect.DeepEqual(empty.Items(), []string{"first"}) || empty.Cursor() != 0 {
		t.Fatalf("expected [first] with cursor 0; got %v with cursor %d", empty.Items(), empty.Cursor())
	}
}

func TestSetReplacesFocusedTitle(t *testing.T) {
	t.Parallel()

	l := NewList([]string{"a", "b"})
	l.Down()
	l.Set("renamed")
	if !reflect.DeepEqual(l.Items(), []string{"a", "renamed"}) {
		t.Fatalf("expected [a renamed]; got %v", l.Items())
	}

	empty := NewList(nil)
	empty.Set("ghost")
	if empty.Len() != 0 {
		t.Fatalf("expected Set on an empty list to be a no-op; got %v", empty.Items())
	}
}

func TestSetCursorClamps(t *testing.T) {
	t.Parallel()

	l := NewList([]string{"a", "b"})
	l.SetCursor(99)
	if l.Cursor() != 1 {
		t.Fatalf("expected cursor clamped to 1; got %d", l.Cursor())
	}
	l.SetCursor(-3)
	if l.Cursor() != 0 {
		t.Fatalf("expected cursor clamped to 0; got %d", l.Cursor())
	}
}
