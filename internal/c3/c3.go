// Package c3 implements deterministic C3 linearization over an explicit
// ancestor list. It is kept independent of the class model so the merge can
// be verified on plain values.
package c3

import "errors"

// ErrInconsistent is returned when no monotonic linearization exists.
var ErrInconsistent = errors.New("c3: inconsistent hierarchy")

// Linearize computes the C3 linearization of node: node followed by the
// merge of its bases' linearizations and the base list itself.
func Linearize[T comparable](node T, bases func(T) []T) ([]T, error) {
	bs := bases(node)
	seqs := make([][]T, 0, len(bs)+1)
	for _, b := range bs {
		lin, err := Linearize(b, bases)
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, lin)
	}
	if len(bs) > 0 {
		tail := make([]T, len(bs))
		copy(tail, bs)
		seqs = append(seqs, tail)
	}
	merged, err := Merge(seqs)
	if err != nil {
		return nil, err
	}
	return append([]T{node}, merged...), nil
}

// Merge folds the sequences into a single total order. A candidate head is
// accepted only when it appears in no other sequence's tail.
func Merge[T comparable](seqs [][]T) ([]T, error) {
	work := make([][]T, 0, len(seqs))
	for _, s := range seqs {
		if len(s) > 0 {
			work = append(work, s)
		}
	}
	var out []T
	for len(work) > 0 {
		cand, ok := pickHead(work)
		if !ok {
			return nil, ErrInconsistent
		}
		out = append(out, cand)
		next := work[:0]
		for _, s := range work {
			if len(s) > 0 && s[0] == cand {
				s = s[1:]
			}
			if len(s) > 0 {
				next = append(next, s)
			}
		}
		work = next
	}
	return out, nil
}

func pickHead[T comparable](work [][]T) (T, bool) {
	for _, s := range work {
		head := s[0]
		if !inAnyTail(work, head) {
			return head, true
		}
	}
	var zero T
	return zero, false
}

func inAnyTail[T comparable](work [][]T, v T) bool {
	for _, s := range work {
		for _, x := range s[1:] {
			if x == v {
				return true
			}
		}
	}
	return false
}
