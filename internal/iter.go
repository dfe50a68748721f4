// Package internal holds helpers shared by the cpu16 packages.
package internal

import (
	"iter"
)

// Concat yields every value of each sequence in turn.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			stopped := false
			seq(func(val T) bool {
				stopped = !yield(val)
				return !stopped
			})
			if stopped {
				return
			}
		}
	}
}

// Concat2 yields every pair of each sequence in turn.
// Later sequences are not started once the consumer stops.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, val := range seq {
				if !yield(key, val) {
					return
				}
			}
		}
	}
}
