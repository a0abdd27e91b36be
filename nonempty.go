package sdp

// NonEmpty is a sequence holding at least one element.
type NonEmpty[T any] struct {
	Head T
	Tail []T
}

// NewNonEmpty returns the sequence head followed by tail.
func NewNonEmpty[T any](head T, tail ...T) NonEmpty[T] {
	if len(tail) == 0 {
		tail = nil
	}
	return NonEmpty[T]{Head: head, Tail: tail}
}

// NonEmptyFrom builds a NonEmpty from items. It reports false when items is
// empty.
func NonEmptyFrom[T any](items []T) (NonEmpty[T], bool) {
	if len(items) == 0 {
		return NonEmpty[T]{}, false
	}
	return NewNonEmpty(items[0], items[1:]...), true
}

// Len is never less than one.
func (n NonEmpty[T]) Len() int {
	return 1 + len(n.Tail)
}

// At returns the i-th element; index 0 is Head.
func (n NonEmpty[T]) At(i int) T {
	if i == 0 {
		return n.Head
	}
	return n.Tail[i-1]
}

// Slice returns the elements in order as a newly allocated slice.
func (n NonEmpty[T]) Slice() []T {
	out := make([]T, 0, n.Len())
	out = append(out, n.Head)
	return append(out, n.Tail...)
}

func mapNonEmpty[S, T any](in []S, field string, fn func(S) (T, error)) (NonEmpty[T], error) {
	items, err := mapAll(in, fn)
	if err != nil {
		return NonEmpty[T]{}, err
	}
	out, ok := NonEmptyFrom(items)
	if !ok {
		return NonEmpty[T]{}, parseError(field, "", errMissingValue)
	}
	return out, nil
}

// mapAll converts every element and stops at the first failure. An empty
// input yields a nil slice.
func mapAll[S, T any](in []S, fn func(S) (T, error)) ([]T, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]T, 0, len(in))
	for _, v := range in {
		t, err := fn(v)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func mapOptional[S, T any](in *S, fn func(S) (T, error)) (*T, error) {
	if in == nil {
		return nil, nil
	}
	t, err := fn(*in)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
